package ports

import (
	"context"

	"github.com/ar-top/map-api/internal/core/domain"
)

// MapRepository defines owner-scoped map persistence. Get, Save and Delete
// filter by both id and owner so a wrong owner is indistinguishable from a
// missing document.
type MapRepository interface {
	Get(ctx context.Context, id, ownerID string) (*domain.Map, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Map, error)
	Create(ctx context.Context, m *domain.Map) (*domain.Map, error)
	Save(ctx context.Context, m *domain.Map) error
	Delete(ctx context.Context, id, ownerID string) error
}
