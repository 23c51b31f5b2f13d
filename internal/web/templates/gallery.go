package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Header renders the identity link and navigation.
func Header(nav Nav) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<header class="site-header"><div class="site-header-inner"><a class="site-owner"`)
		h.attr("href", string(templ.URL(nav.OwnerHref)))
		h.raw(`>`)
		h.text(nav.Owner)
		h.raw(`</a><nav class="site-nav">`)
		for _, link := range nav.Links {
			h.raw(`<a`)
			h.attr("href", string(templ.URL(link.Href)))
			if link.Active {
				h.raw(` class="nav-link nav-link--active" aria-current="page"`)
			} else {
				h.raw(` class="nav-link"`)
			}
			h.raw(`>`)
			h.text(link.Label)
			h.raw(`</a>`)
		}
		h.raw(`</nav></div></header>`)
		return h.err
	})
}

func HeroBanner(hero Hero) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="hero"><h1 class="hero-title">`)
		h.text(hero.Title)
		h.raw(`</h1><p class="hero-subtitle">`)
		h.text(hero.Subtitle)
		h.raw(`</p></section>`)
		return h.err
	})
}

// Grid renders one cell per card in the given order. HTMX swaps target its id.
func Grid(cards []CardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="projects" id="projects"><div class="grid">`)
		for _, c := range cards {
			h.raw(`<div`)
			h.attr("class", cellClass(c.Featured))
			h.attr("data-key", c.Key)
			h.raw(`>`)
			h.component(ctx, Card(c))
			h.raw(`</div>`)
		}
		h.raw(`</div></section>`)
		return h.err
	})
}

// Page renders the full gallery document.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(data.Title)
		h.raw(`</title>`)
		for _, href := range data.Stylesheets {
			h.raw(`<link rel="stylesheet"`)
			h.attr("href", href)
			h.raw(`>`)
		}
		h.raw(`<script`)
		if data.Nonce != "" {
			h.attr("nonce", data.Nonce)
		}
		h.raw(`>document.documentElement.classList.add("js")</script>`)
		for _, src := range data.Scripts {
			h.raw(`<script defer`)
			h.attr("src", src)
			h.raw(`></script>`)
		}
		h.raw(`</head><body class="page">`)
		h.component(ctx, Header(data.Nav))
		h.raw(`<main>`)
		h.component(ctx, HeroBanner(data.Hero))
		h.component(ctx, Grid(data.Cards))
		h.raw(`</main></body></html>`)
		return h.err
	})
}
