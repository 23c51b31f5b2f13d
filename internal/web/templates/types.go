package templates

import (
	"github.com/dennisxing/garden/internal/domain"
	"github.com/dennisxing/garden/internal/media"
)

type NavLink struct {
	Label  string
	Href   string
	Active bool
}

type Nav struct {
	Owner     string
	OwnerHref string
	Links     []NavLink
}

type Hero struct {
	Title    string
	Subtitle string
}

// CardView is everything the card renderer needs for one project.
type CardView struct {
	Key         string
	Title       string
	Date        string
	Description string
	Link        string
	Featured    bool
	Visual      domain.VisualKind
	Image       media.Image
	VideoSrc    string
	Quote       string
	State       CardState
}

type PageData struct {
	Title       string
	Nav         Nav
	Hero        Hero
	Cards       []CardView
	Stylesheets []string
	Scripts     []string
	// Nonce authorises the inline bootstrap script; empty for static builds.
	Nonce string
}
