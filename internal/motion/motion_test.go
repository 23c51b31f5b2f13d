package motion

import (
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	a := Default()

	tr := a.Transition()
	if tr.Duration != 300*time.Millisecond {
		t.Errorf("Duration = %v, want 300ms", tr.Duration)
	}
	if tr.Easing != "ease-in-out" {
		t.Errorf("Easing = %q, want ease-in-out", tr.Easing)
	}

	if got := a.Collapsed(); got.Opacity != 0 || got.Height != HeightZero {
		t.Errorf("Collapsed() = %+v", got)
	}
	if got := a.Expanded(); got.Opacity != 1 || got.Height != HeightAuto {
		t.Errorf("Expanded() = %+v", got)
	}
}

func TestStylesheet_CustomTiming(t *testing.T) {
	css := Stylesheet(New(Transition{Duration: 450 * time.Millisecond, Easing: "linear"}), DefaultSelectors)
	if !strings.Contains(css, "transition: opacity 450ms linear, grid-template-rows 450ms linear;") {
		t.Errorf("Stylesheet() missing custom timing\n%s", css)
	}
}

func TestNew_DefaultsEasing(t *testing.T) {
	a := New(Transition{Duration: time.Second})
	if a.Transition().Easing != "ease-in-out" {
		t.Errorf("Easing = %q", a.Transition().Easing)
	}
}

func TestStylesheet(t *testing.T) {
	css := Stylesheet(Default(), DefaultSelectors)

	for _, want := range []string{
		"transition: opacity 300ms ease-in-out, grid-template-rows 300ms ease-in-out;",
		"overflow: hidden;",
		".card[data-hovered=\"true\"] .card-description",
		".card-link:focus-visible .card-description",
		"grid-template-rows: 0fr;",
		"grid-template-rows: 1fr;",
		"prefers-reduced-motion",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("Stylesheet() missing %q\n%s", want, css)
		}
	}
}
