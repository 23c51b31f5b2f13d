package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Project is one gallery entry. Optional string fields are empty when absent.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Image       string   `json:"image,omitempty"`
	Video       string   `json:"video,omitempty"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
	Quote       string   `json:"quote,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// VisualKind is the background content a card shows.
type VisualKind int

const (
	VisualEmpty VisualKind = iota
	VisualQuote
	VisualImage
	VisualVideo
)

func (k VisualKind) String() string {
	switch k {
	case VisualVideo:
		return "video"
	case VisualImage:
		return "image"
	case VisualQuote:
		return "quote"
	default:
		return "empty"
	}
}

// Visual picks the background by strict priority: video, image, quote, empty.
func (p Project) Visual() VisualKind {
	switch {
	case strings.TrimSpace(p.Video) != "":
		return VisualVideo
	case strings.TrimSpace(p.Image) != "":
		return VisualImage
	case strings.TrimSpace(p.Quote) != "":
		return VisualQuote
	default:
		return VisualEmpty
	}
}

// ValidationError reports a malformed record in a collection.
type ValidationError struct {
	Index int
	ID    string
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("project[%d]: %s %s", e.Index, e.Field, e.Msg)
	}
	return fmt.Sprintf("project[%d] %q: %s %s", e.Index, e.ID, e.Field, e.Msg)
}

// Validate checks the required fields of a single record.
func (p Project) Validate(index int) error {
	required := []struct {
		field string
		value string
	}{
		{"id", p.ID},
		{"title", p.Title},
		{"date", p.Date},
		{"description", p.Description},
		{"link", p.Link},
	}

	var errs []error
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, &ValidationError{Index: index, ID: p.ID, Field: r.field, Msg: "is required"})
		}
	}
	return errors.Join(errs...)
}

// ValidateCollection validates every record and rejects duplicate ids.
func ValidateCollection(projects []Project) error {
	var errs []error
	seen := make(map[string]int, len(projects))
	for i, p := range projects {
		if err := p.Validate(i); err != nil {
			errs = append(errs, err)
		}
		if p.ID == "" {
			continue
		}
		if first, ok := seen[p.ID]; ok {
			errs = append(errs, &ValidationError{
				Index: i,
				ID:    p.ID,
				Field: "id",
				Msg:   fmt.Sprintf("duplicates project[%d]", first),
			})
			continue
		}
		seen[p.ID] = i
	}
	return errors.Join(errs...)
}
