package store

import (
	"fmt"

	"github.com/google/uuid"

	"photostudio-backend/internal/models"
)

const userColumns = "id, email, password_hash, role, name, phone, invite_token, stripe_customer_id, created_at"

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name,
		&u.Phone, &u.InviteToken, &u.StripeCustomerID, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CreateUser(email, passwordHash, role, name string) (*models.User, error) {
	row := c.db.QueryRow(`
		INSERT INTO users (email, password_hash, role, name)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		email, passwordHash, role, name)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (c *Client) SetUserInviteToken(userID uuid.UUID, token string) error {
	_, err := c.db.Exec(`UPDATE users SET invite_token = $1 WHERE id = $2`, token, userID)
	return err
}

func (c *Client) GetUserByEmail(email string) (*models.User, error) {
	row := c.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (c *Client) GetUserByID(id uuid.UUID) (*models.User, error) {
	row := c.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (c *Client) GetUserByInviteToken(token string) (*models.User, error) {
	row := c.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE invite_token = $1`, token)
	return scanUser(row)
}

// ActivateUser sets the password and clears the invite token after account setup.
func (c *Client) ActivateUser(userID uuid.UUID, passwordHash, name string) error {
	_, err := c.db.Exec(`
		UPDATE users SET password_hash = $1, name = COALESCE(NULLIF($2, ''), name), invite_token = NULL
		WHERE id = $3`,
		passwordHash, name, userID)
	return err
}

func (c *Client) SetStripeCustomerID(userID uuid.UUID, customerID string) error {
	_, err := c.db.Exec(`UPDATE users SET stripe_customer_id = $1 WHERE id = $2`, customerID, userID)
	return err
}

func (c *Client) ListClients() ([]models.User, error) {
	rows, err := c.db.Query(`
		SELECT ` + userColumns + ` FROM users WHERE role = 'client' ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}
