package models

import (
	"time"
)

// DefaultActor is recorded in created_by/updated_by for rows touched by the service.
const DefaultActor = "app_service"

// Audit is embedded in every entity. created_* fields are assigned on insert,
// updated_* refreshed on every mutation.
type Audit struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	UpdatedBy string    `db:"updated_by" json:"updated_by"`
}
