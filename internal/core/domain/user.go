package domain

import "time"

const RoleUser = "user"

// User models a registered account. The credential is only ever stored hashed.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Roles        []string  `json:"roles" bson:"roles"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Claims is the per-request identity extracted from a verified token.
// Never persisted.
type Claims struct {
	Email string
}
