package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type PortfolioItem struct {
	ID           uuid.UUID
	Title        string
	Description  sql.NullString
	Category     string
	ImageKey     string
	ThumbnailKey string
	SortOrder    int
	IsVisible    bool
	CreatedAt    time.Time
}

// PortfolioPatch is a partial update: nil fields are left untouched.
type PortfolioPatch struct {
	Title       *string
	Description *string
	Category    *string
	IsVisible   *bool
}
