// Package catalog serves the static project collection from JSON.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dennisxing/garden/internal/domain"
)

//go:embed projects.json
var embeddedProjects []byte

// ErrNotFound is returned when no project has the requested id.
var ErrNotFound = errors.New("project not found")

// Repository holds the collection loaded at start-up. It is never mutated
// after construction, so concurrent readers need no locking.
type Repository struct {
	projects []domain.Project
	byID     map[string]int
}

// Load reads the collection from path, or from the embedded data when path is empty.
func Load(path string) (*Repository, error) {
	if path == "" {
		return Parse(embeddedProjects)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read projects: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a JSON array of projects.
func Parse(data []byte) (*Repository, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var projects []domain.Project
	if err := dec.Decode(&projects); err != nil {
		return nil, fmt.Errorf("parse projects: %w", err)
	}
	return New(projects)
}

// New validates projects and builds a Repository over a private copy.
func New(projects []domain.Project) (*Repository, error) {
	if err := domain.ValidateCollection(projects); err != nil {
		return nil, fmt.Errorf("validate projects: %w", err)
	}

	r := &Repository{
		projects: make([]domain.Project, len(projects)),
		byID:     make(map[string]int, len(projects)),
	}
	for i, p := range projects {
		p.Tags = append([]string{}, p.Tags...)
		r.projects[i] = p
		r.byID[p.ID] = i
	}
	return r, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	p := r.projects[i]
	return &p, nil
}

// Len returns the number of projects in the collection.
func (r *Repository) Len() int {
	return len(r.projects)
}
