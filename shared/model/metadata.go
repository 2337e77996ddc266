package model

import "time"

// Metadata holds the store-managed timestamps shared by every entity.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
