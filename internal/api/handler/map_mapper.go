package handler

import (
	"github.com/ar-top/map-api/internal/core/domain"
	"github.com/ar-top/map-api/internal/core/ports"
)

// --- Request → Service input ---

func toModels(reqs []modelRequest) []domain.Model {
	models := make([]domain.Model, len(reqs))
	for i, m := range reqs {
		models[i] = domain.Model{
			Type:     m.Type,
			Position: domain.Position{X: m.Position.X, Y: m.Position.Y, Z: m.Position.Z},
			Color:    m.Color,
		}
	}
	return models
}

func toCreateInput(body *createMapBody) ports.CreateMapInput {
	return ports.CreateMapInput{
		Name:    *body.Name,
		Width:   *body.Width,
		Height:  *body.Height,
		Depth:   *body.Depth,
		Color:   *body.Color,
		Private: *body.Private,
		Models:  toModels(*body.Models),
	}
}

func toPatch(body *updateMapBody) ports.MapPatch {
	patch := ports.MapPatch{
		Name:    body.Name,
		Width:   body.Width,
		Height:  body.Height,
		Depth:   body.Depth,
		Color:   body.Color,
		Private: body.Private,
	}
	if body.Models != nil {
		models := toModels(*body.Models)
		patch.Models = &models
	}
	return patch
}

// --- Domain → HTTP response ---

func toMapResponse(m *domain.Map) mapResponse {
	models := make([]modelResponse, len(m.Models))
	for i, model := range m.Models {
		models[i] = modelResponse{
			Type:     model.Type,
			Position: positionResponse{X: model.Position.X, Y: model.Position.Y, Z: model.Position.Z},
			Color:    model.Color,
		}
	}
	return mapResponse{
		ID:        m.ID,
		Name:      m.Name,
		Width:     m.Width,
		Height:    m.Height,
		Depth:     m.Depth,
		Color:     m.Color,
		Private:   m.Private,
		Models:    models,
		Owner:     m.OwnerID,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func toListResponse(maps []domain.Map) []mapResponse {
	out := make([]mapResponse, len(maps))
	for i := range maps {
		out[i] = toMapResponse(&maps[i])
	}
	return out
}
