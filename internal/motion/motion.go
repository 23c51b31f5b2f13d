// Package motion describes the description reveal transition and renders it as CSS.
package motion

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Height is the target height of an animated element.
type Height int

const (
	HeightZero Height = iota
	HeightAuto
)

// gridRows maps a height onto grid-template-rows so "auto" animates without measuring.
func (h Height) gridRows() string {
	if h == HeightAuto {
		return "1fr"
	}
	return "0fr"
}

// Frame is one end state of the transition.
type Frame struct {
	Opacity float64
	Height  Height
}

// Transition is the timing shared by both directions.
type Transition struct {
	Duration time.Duration
	Easing   string
}

// Animator drives an element between its collapsed and expanded frames.
type Animator interface {
	Expanded() Frame
	Collapsed() Frame
	Transition() Transition
}

type tween struct {
	transition Transition
}

// Default is the card description reveal: 300ms ease-in-out, opacity and height.
func Default() Animator {
	return tween{transition: Transition{Duration: 300 * time.Millisecond, Easing: "ease-in-out"}}
}

// New returns an opacity/height animator with custom timing.
func New(t Transition) Animator {
	if t.Easing == "" {
		t.Easing = "ease-in-out"
	}
	return tween{transition: t}
}

func (tween) Expanded() Frame { return Frame{Opacity: 1, Height: HeightAuto} }
func (tween) Collapsed() Frame { return Frame{Opacity: 0, Height: HeightZero} }
func (t tween) Transition() Transition { return t.transition }

// Selectors name the elements the stylesheet targets.
type Selectors struct {
	// Link wraps the card and receives keyboard focus.
	Link string
	// Card is the hover target; its data-hovered attribute carries the flag.
	Card string
	// Description is the animated container; its only child is the clipped content.
	Description string
}

// DefaultSelectors match the gallery card markup.
var DefaultSelectors = Selectors{Link: ".card-link", Card: ".card", Description: ".card-description"}

// Stylesheet renders the collapsed rule, the expanded rules and the reduced motion override.
func Stylesheet(a Animator, sel Selectors) string {
	t := a.Transition()
	ms := strconv.FormatInt(t.Duration.Milliseconds(), 10) + "ms"
	collapsed, expanded := a.Collapsed(), a.Expanded()

	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", sel.Description)
	b.WriteString("  display: grid;\n")
	b.WriteString("  overflow: hidden;\n")
	fmt.Fprintf(&b, "  opacity: %s;\n", formatOpacity(collapsed.Opacity))
	fmt.Fprintf(&b, "  grid-template-rows: %s;\n", collapsed.Height.gridRows())
	fmt.Fprintf(&b, "  transition: opacity %s %s, grid-template-rows %s %s;\n", ms, t.Easing, ms, t.Easing)
	b.WriteString("}\n")

	fmt.Fprintf(&b, "%s > * {\n  min-height: 0;\n  overflow: hidden;\n}\n", sel.Description)

	fmt.Fprintf(&b, "%s[data-hovered=\"true\"] %s,\n", sel.Card, sel.Description)
	fmt.Fprintf(&b, "%s:focus-visible %s,\n", sel.Link, sel.Description)
	fmt.Fprintf(&b, "html:not(.js) %s:hover %s {\n", sel.Card, sel.Description)
	fmt.Fprintf(&b, "  opacity: %s;\n", formatOpacity(expanded.Opacity))
	fmt.Fprintf(&b, "  grid-template-rows: %s;\n", expanded.Height.gridRows())
	b.WriteString("}\n")

	b.WriteString("@media (prefers-reduced-motion: reduce) {\n")
	fmt.Fprintf(&b, "  %s {\n    transition: none;\n  }\n", sel.Description)
	b.WriteString("}\n")
	return b.String()
}

func formatOpacity(o float64) string {
	return strconv.FormatFloat(o, 'f', -1, 64)
}
