package handler

import "time"

type positionRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

type modelRequest struct {
	Type     string          `json:"type"`
	Position positionRequest `json:"position"`
	Color    string          `json:"color,omitempty"`
}

// createMapBody uses pointer fields so a missing key is distinguishable from
// a zero value: all seven keys are required on create, zero values included.
type createMapBody struct {
	Name    *string         `json:"name"    validate:"required"`
	Width   *int            `json:"width"   validate:"required"`
	Height  *int            `json:"height"  validate:"required"`
	Depth   *int            `json:"depth"   validate:"required"`
	Color   *string         `json:"color"   validate:"required"`
	Private *bool           `json:"private" validate:"required"`
	Models  *[]modelRequest `json:"models"  validate:"required"`
}

type createMapRequest struct {
	Map *createMapBody `json:"map" validate:"required"`
}

// updateMapBody is the partial update payload. Present keys are applied even
// when zero-valued; absent keys leave the stored field alone.
type updateMapBody struct {
	Name    *string         `json:"name"`
	Width   *int            `json:"width"`
	Height  *int            `json:"height"`
	Depth   *int            `json:"depth"`
	Color   *string         `json:"color"`
	Private *bool           `json:"private"`
	Models  *[]modelRequest `json:"models"`
}

type updateMapRequest struct {
	Map *updateMapBody `json:"map"`
}

// Response-only types owned by the transport layer, kept separate from the
// domain so the JSON contract is not coupled to internal changes.

type positionResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

type modelResponse struct {
	Type     string           `json:"type"`
	Position positionResponse `json:"position"`
	Color    string           `json:"color,omitempty"`
}

type mapResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Depth     int             `json:"depth"`
	Color     string          `json:"color"`
	Private   bool            `json:"private"`
	Models    []modelResponse `json:"models"`
	Owner     string          `json:"owner"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type mapMutationResponse struct {
	Success string      `json:"success"`
	Map     mapResponse `json:"map"`
}

type deleteMapResponse struct {
	Success string `json:"success"`
}
