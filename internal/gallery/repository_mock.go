package gallery

import (
	"context"

	"github.com/dennisxing/garden/internal/domain"
)

// MockRepository is a mock implementation of ports.ProjectRepository for testing.
type MockRepository struct {
	ListFunc    func(ctx context.Context) ([]domain.Project, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.Project, error)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.Project, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Project{}, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}
