package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ar-top/map-api/internal/core/domain"
	"github.com/ar-top/map-api/internal/core/ports"
)

// MapService implements ownership-scoped map CRUD. Every operation resolves
// the acting user first and pushes the owner filter into the repository, so
// a map owned by someone else is reported exactly like a missing one.
type MapService struct {
	maps   ports.MapRepository
	users  ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewMapService(maps ports.MapRepository, users ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *MapService {
	return &MapService{maps: maps, users: users, tokens: tokens, logger: logger}
}

// resolveOwner looks up the acting user from the claims email. An unknown
// email maps to ErrMapNotFound so ownership checks reject naturally.
func (s *MapService) resolveOwner(ctx context.Context, claims domain.Claims) (*domain.User, error) {
	if claims.Email == "" {
		return nil, domain.ErrMalformedRequest
	}
	user, err := s.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrMapNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *MapService) GetMap(ctx context.Context, claims domain.Claims, id string) (*domain.Map, error) {
	user, err := s.resolveOwner(ctx, claims)
	if err != nil {
		return nil, err
	}

	m, err := s.maps.Get(ctx, id, user.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrMapNotFound) {
			s.logger.Error().Err(err).Str("map_id", id).Msg("failed to load map")
		}
		return nil, err
	}
	return m, nil
}

// ListMaps resolves the acting user by verifying the supplied token rather
// than from middleware claims. Verification failure here is "token expired",
// never a not-found.
func (s *MapService) ListMaps(ctx context.Context, authToken string) ([]domain.Map, error) {
	email, err := s.tokens.Verify(authToken)
	if err != nil {
		return nil, domain.ErrTokenExpired
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrTokenExpired
		}
		return nil, err
	}

	list, err := s.maps.ListByOwner(ctx, user.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", user.ID).Msg("failed to list maps")
		return nil, err
	}
	if list == nil {
		list = []domain.Map{}
	}
	return list, nil
}

func (s *MapService) CreateMap(ctx context.Context, claims domain.Claims, input ports.CreateMapInput) (*domain.Map, error) {
	user, err := s.resolveOwner(ctx, claims)
	if err != nil {
		if errors.Is(err, domain.ErrMapNotFound) {
			// There is no map to conflate against on create.
			return nil, domain.ErrMalformedRequest
		}
		return nil, err
	}

	models := input.Models
	if models == nil {
		models = []domain.Model{}
	}

	now := time.Now().UTC()
	created, err := s.maps.Create(ctx, &domain.Map{
		Name:      input.Name,
		Width:     input.Width,
		Height:    input.Height,
		Depth:     input.Depth,
		Color:     input.Color,
		Private:   input.Private,
		Models:    models,
		OwnerID:   user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("owner", user.ID).Msg("failed to save map")
		return nil, err
	}

	s.logger.Info().Str("map_id", created.ID).Str("owner", user.ID).Msg("map created")
	return created, nil
}

// UpdateMap applies a partial update restricted to the fixed allow-list.
// A nil patch field leaves the stored value alone; a present field is applied
// even when zero-valued. Owner and id are never touched.
func (s *MapService) UpdateMap(ctx context.Context, claims domain.Claims, id string, patch ports.MapPatch) (*domain.Map, error) {
	user, err := s.resolveOwner(ctx, claims)
	if err != nil {
		return nil, err
	}

	m, err := s.maps.Get(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Width != nil {
		m.Width = *patch.Width
	}
	if patch.Height != nil {
		m.Height = *patch.Height
	}
	if patch.Depth != nil {
		m.Depth = *patch.Depth
	}
	if patch.Color != nil {
		m.Color = *patch.Color
	}
	if patch.Private != nil {
		m.Private = *patch.Private
	}
	if patch.Models != nil {
		m.Models = *patch.Models
	}
	m.UpdatedAt = time.Now().UTC()

	if err := s.maps.Save(ctx, m); err != nil {
		s.logger.Error().Err(err).Str("map_id", id).Msg("failed to update map")
		return nil, err
	}
	return m, nil
}

func (s *MapService) DeleteMap(ctx context.Context, claims domain.Claims, id string) (string, error) {
	user, err := s.resolveOwner(ctx, claims)
	if err != nil {
		return "", err
	}

	if _, err := s.maps.Get(ctx, id, user.ID); err != nil {
		return "", err
	}

	if err := s.maps.Delete(ctx, id, user.ID); err != nil {
		s.logger.Error().Err(err).Str("map_id", id).Msg("failed to delete map")
		return "", err
	}

	s.logger.Info().Str("map_id", id).Str("owner", user.ID).Msg("map deleted")
	return id, nil
}
