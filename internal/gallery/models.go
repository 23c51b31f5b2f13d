package gallery

import (
	"github.com/dennisxing/garden/internal/domain"
	"github.com/dennisxing/garden/internal/media"
	"github.com/dennisxing/garden/internal/routepath"
	"github.com/dennisxing/garden/internal/web/templates"
)

// Site is the fixed copy around the grid.
type Site struct {
	Owner        string
	HeroTitle    string
	HeroSubtitle string
}

// DefaultSite matches the portfolio's garden page.
var DefaultSite = Site{
	Owner:        "Dennis Xing",
	HeroTitle:    "The Garden",
	HeroSubtitle: "A collection of places, notes, sketches, and builds.",
}

func (s Site) nav() templates.Nav {
	return templates.Nav{
		Owner:     s.Owner,
		OwnerHref: routepath.Root,
		Links: []templates.NavLink{
			{Label: "About", Href: routepath.About},
			{Label: "Garden", Href: routepath.Garden, Active: true},
		},
	}
}

func buildCards(projects []domain.Project, resolver media.Resolver) []templates.CardView {
	cards := make([]templates.CardView, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, templates.NewCardView(p, resolver))
	}
	return cards
}

func buildPage(site Site, cards []templates.CardView, nonce string) templates.PageData {
	return templates.PageData{
		Title: site.HeroTitle,
		Nav:   site.nav(),
		Hero: templates.Hero{
			Title:    site.HeroTitle,
			Subtitle: site.HeroSubtitle,
		},
		Cards: cards,
		Stylesheets: []string{
			routepath.StaticAsset("garden.css"),
			routepath.Stylesheet,
		},
		Scripts: []string{routepath.StaticAsset("garden.js")},
		Nonce:   nonce,
	}
}
