package domain

import "time"

// Position locates a model on the voxel grid.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
	Z int `json:"z" bson:"z"`
}

// Model is a single placed model descriptor. The core treats the collection
// as opaque ordered data; only the editor interprets it.
type Model struct {
	Type     string   `json:"type" bson:"type"`
	Position Position `json:"position" bson:"position"`
	Color    string   `json:"color,omitempty" bson:"color,omitempty"`
}

// Map is a user-owned map document. OwnerID is set at creation and never
// changed by update operations.
type Map struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Width     int       `json:"width" bson:"width"`
	Height    int       `json:"height" bson:"height"`
	Depth     int       `json:"depth" bson:"depth"`
	Color     string    `json:"color" bson:"color"`
	Private   bool      `json:"private" bson:"private"`
	Models    []Model   `json:"models" bson:"models"`
	OwnerID   string    `json:"owner" bson:"owner"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
