package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
	InvoiceStatusVoid  = "void"
)

type Invoice struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	ProjectID       uuid.NullUUID
	StripeInvoiceID sql.NullString
	AmountCents     int64
	Status          string
	DueDate         time.Time
	LineItems       json.RawMessage
	Token           string
	PaidAt          sql.NullTime
	CreatedAt       time.Time
}

type LineItem struct {
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents"`
	Quantity    int64  `json:"quantity"`
}

// Blocking reports whether this invoice locks its project's downloads.
func (i *Invoice) Blocking() bool {
	return i.Status != InvoiceStatusPaid && i.Status != InvoiceStatusVoid
}

func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}
	return false
}
