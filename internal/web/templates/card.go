package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dennisxing/garden/internal/domain"
	"github.com/dennisxing/garden/internal/media"
)

// CardState is the only mutable state of a card. The zero value is not hovered.
type CardState struct {
	hovered bool
}

func (s *CardState) PointerEnter() { s.hovered = true }
func (s *CardState) PointerLeave() { s.hovered = false }

// Hovered reports whether the description is expanded.
func (s CardState) Hovered() bool { return s.hovered }

// NewCardView resolves a project's visual through the media resolver. A source the
// resolver rejects falls through to the next kind in the priority chain.
func NewCardView(p domain.Project, r media.Resolver) CardView {
	v := CardView{
		Key:         p.ID,
		Title:       p.Title,
		Date:        p.Date,
		Description: p.Description,
		Link:        p.Link,
		Featured:    p.Featured,
		Quote:       p.Quote,
	}

	switch p.Visual() {
	case domain.VisualVideo:
		if src, err := r.Video(p.Video); err == nil {
			v.Visual, v.VideoSrc = domain.VisualVideo, src
			return v
		}
		fallthrough
	case domain.VisualImage:
		if img, err := r.Image(p.Image); err == nil {
			v.Visual, v.Image = domain.VisualImage, img
			return v
		}
		fallthrough
	case domain.VisualQuote:
		if strings.TrimSpace(p.Quote) != "" {
			v.Visual = domain.VisualQuote
			return v
		}
	}
	v.Visual = domain.VisualEmpty
	return v
}

// Card renders one navigable tile.
func Card(v CardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<a class="card-link"`)
		h.attr("href", string(templ.URL(v.Link)))
		h.raw(`><article class="card"`)
		h.attr("data-visual", v.Visual.String())
		h.attr("data-hovered", boolAttr(v.State.Hovered()))
		h.raw(`><div class="card-visual">`)
		h.component(ctx, cardVisual(v))
		h.raw(`</div><div class="card-overlay"><div class="card-heading"><h3 class="card-title">`)
		h.text(v.Title)
		h.raw(`</h3><span class="card-date">`)
		h.text(v.Date)
		h.raw(`</span></div><div class="card-description"><div><p>`)
		h.text(v.Description)
		h.raw(`</p></div></div></div></article></a>`)
		return h.err
	})
}

func cardVisual(v CardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		switch v.Visual {
		case domain.VisualVideo:
			h.raw(`<video class="card-media"`)
			h.attr("src", string(templ.URL(v.VideoSrc)))
			h.raw(` autoplay muted loop playsinline></video>`)
		case domain.VisualImage:
			h.raw(`<img class="card-media"`)
			h.attr("src", string(templ.URL(v.Image.Src)))
			if v.Image.SrcSet != "" {
				h.attr("srcset", v.Image.SrcSet)
			}
			if v.Image.Sizes != "" {
				h.attr("sizes", v.Image.Sizes)
			}
			h.attr("alt", v.Title)
			h.raw(` loading="lazy" decoding="async">`)
		case domain.VisualQuote:
			h.raw(`<div class="card-placeholder"><p class="card-quote">`)
			h.text(v.Quote)
			h.raw(`</p></div>`)
		default:
			h.raw(`<div class="card-placeholder"></div>`)
		}
		return h.err
	})
}
