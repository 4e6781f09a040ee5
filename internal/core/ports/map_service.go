package ports

import (
	"context"

	"github.com/ar-top/map-api/internal/core/domain"
)

// CreateMapInput carries all data needed to create a new map. Every field is
// required at the transport boundary; the service receives a complete set.
type CreateMapInput struct {
	Name    string
	Width   int
	Height  int
	Depth   int
	Color   string
	Private bool
	Models  []domain.Model
}

// MapPatch is a partial update. Nil pointers mean "leave the stored value
// alone"; a non-nil pointer applies its value even when zero, false or empty.
type MapPatch struct {
	Name    *string
	Width   *int
	Height  *int
	Depth   *int
	Color   *string
	Private *bool
	Models  *[]domain.Model
}

// MapService defines ownership-scoped map use cases. Claims identify the
// acting user by email; ListMaps instead takes the raw auth token and
// verifies it itself (historical contract preserved).
type MapService interface {
	GetMap(ctx context.Context, claims domain.Claims, id string) (*domain.Map, error)
	ListMaps(ctx context.Context, authToken string) ([]domain.Map, error)
	CreateMap(ctx context.Context, claims domain.Claims, input CreateMapInput) (*domain.Map, error)
	UpdateMap(ctx context.Context, claims domain.Claims, id string, patch MapPatch) (*domain.Map, error)
	DeleteMap(ctx context.Context, claims domain.Claims, id string) (string, error)
}
