package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	ProjectStatusActive    = "active"
	ProjectStatusDelivered = "delivered"
	ProjectStatusArchived  = "archived"
)

type Project struct {
	ID                 uuid.UUID
	ClientID           uuid.UUID
	Title              string
	Description        string
	Status             string
	CoverImageKey      sql.NullString
	Categories         pq.StringArray
	ShareLinkToken     sql.NullString
	ShareLinkExpiresAt sql.NullTime
	ProjectExpiresAt   sql.NullTime
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProjectPatch is a partial update: nil fields are left untouched.
type ProjectPatch struct {
	Title            *string
	Description      *string
	Categories       *[]string
	CoverImageKey    *string
	ProjectExpiresAt *time.Time
}
