package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

type User struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	Role             string
	Name             string
	Phone            sql.NullString
	InviteToken      sql.NullString
	StripeCustomerID sql.NullString
	CreatedAt        time.Time
}
