package ports

import (
	"context"

	"github.com/dennisxing/garden/internal/domain"
)

// ProjectRepository provides read-only access to the gallery collection.
type ProjectRepository interface {
	// List returns every project in collection order.
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
}
