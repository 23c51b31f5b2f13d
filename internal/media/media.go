// Package media resolves project media URIs into renderable sources.
package media

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSizes is the responsive sizes hint for gallery card images.
const DefaultSizes = "(max-width: 768px) 100vw, (max-width: 1200px) 50vw, 33vw"

// ErrSourceRequired is returned when a media URI is empty.
var ErrSourceRequired = errors.New("media source is required")

// Image is a renderable image with responsive sizing hints.
type Image struct {
	Src    string
	SrcSet string
	Sizes  string
}

// Resolver turns media URIs into renderable sources.
type Resolver interface {
	Image(src string) (Image, error)
	Video(src string) (string, error)
}

// Passthrough serves every URI unchanged with no width candidates.
type Passthrough struct{}

func (Passthrough) Image(src string) (Image, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return Image{}, ErrSourceRequired
	}
	return Image{Src: src, Sizes: DefaultSizes}, nil
}

func (Passthrough) Video(src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", ErrSourceRequired
	}
	return src, nil
}

// WidthQuery asks an image server for resized variants with a "w" query parameter.
type WidthQuery struct {
	baseURL string
	widths  []int
}

// NewWidthQuery builds a resolver. Relative URIs are joined to baseURL when it is set.
func NewWidthQuery(baseURL string, widths []int) *WidthQuery {
	clean := make([]int, 0, len(widths))
	for _, w := range widths {
		if w > 0 {
			clean = append(clean, w)
		}
	}
	return &WidthQuery{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		widths:  clean,
	}
}

func (q *WidthQuery) Image(src string) (Image, error) {
	full, err := q.absolute(src)
	if err != nil {
		return Image{}, err
	}
	if len(q.widths) == 0 {
		return Image{Src: full, Sizes: DefaultSizes}, nil
	}

	candidates := make([]string, 0, len(q.widths))
	for _, w := range q.widths {
		u, err := withWidth(full, w)
		if err != nil {
			return Image{}, err
		}
		candidates = append(candidates, u+" "+strconv.Itoa(w)+"w")
	}
	largest, err := withWidth(full, q.widths[len(q.widths)-1])
	if err != nil {
		return Image{}, err
	}
	return Image{
		Src:    largest,
		SrcSet: strings.Join(candidates, ", "),
		Sizes:  DefaultSizes,
	}, nil
}

func (q *WidthQuery) Video(src string) (string, error) {
	return q.absolute(src)
}

func (q *WidthQuery) absolute(src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", ErrSourceRequired
	}
	if q.baseURL == "" || !strings.HasPrefix(src, "/") || strings.HasPrefix(src, "//") {
		return src, nil
	}
	return q.baseURL + src, nil
}

func withWidth(raw string, width int) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse media url %q: %w", raw, err)
	}
	values := u.Query()
	values.Set("w", strconv.Itoa(width))
	u.RawQuery = values.Encode()
	return u.String(), nil
}

// ParseWidths parses a comma separated width ladder such as "640,1080,1920".
func ParseWidths(s string) ([]int, error) {
	var widths []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.Atoi(part)
		if err != nil || w <= 0 {
			return nil, fmt.Errorf("invalid media width %q", part)
		}
		widths = append(widths, w)
	}
	return widths, nil
}
