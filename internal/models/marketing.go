package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PricingPackage struct {
	ID           uuid.UUID
	Name         string
	Description  string
	PriceCents   int64
	PriceDisplay string
	Features     pq.StringArray
	IsCustom     bool
	SortOrder    int
	IsVisible    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PricingPatch carries the fields an update may change. Nil fields are
// left untouched.
type PricingPatch struct {
	Name         *string
	Description  *string
	PriceCents   *int64
	PriceDisplay *string
	Features     []string
	IsCustom     *bool
	IsVisible    *bool
}

type Review struct {
	ID         uuid.UUID
	AuthorName string
	Email      string
	Rating     int
	Body       string
	IsApproved bool
	ProjectID  uuid.NullUUID
	CreatedAt  time.Time
}

const (
	InquiryStatusNew    = "new"
	InquiryStatusBooked = "booked"
	InquiryStatusClosed = "closed"
)

type Inquiry struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     sql.NullString
	PackageID uuid.NullUUID
	Message   string
	EventDate sql.NullTime
	Status    string
	CreatedAt time.Time
}

type SiteSetting struct {
	Key   string
	Value json.RawMessage
}
