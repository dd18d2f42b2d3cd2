package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"photostudio-backend/internal/models"
)

const projectColumns = `id, client_id, title, description, status, cover_image_key, categories,
	share_link_token, share_link_expires_at, project_expires_at, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.ClientID, &p.Title, &p.Description, &p.Status,
		&p.CoverImageKey, &p.Categories,
		&p.ShareLinkToken, &p.ShareLinkExpiresAt, &p.ProjectExpiresAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProject(clientID uuid.UUID, title, description string, categories []string) (*models.Project, error) {
	if categories == nil {
		categories = []string{}
	}
	row := c.db.QueryRow(`
		INSERT INTO projects (client_id, title, description, categories)
		VALUES ($1, $2, $3, $4)
		RETURNING `+projectColumns,
		clientID, title, description, pq.Array(categories))
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

func (c *Client) GetProject(id uuid.UUID) (*models.Project, error) {
	row := c.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

func (c *Client) GetProjectByShareToken(token string) (*models.Project, error) {
	row := c.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE share_link_token = $1`, token)
	return scanProject(row)
}

// ListProjects filters by status and/or client; empty values mean no filter.
func (c *Client) ListProjects(status string, clientID uuid.NullUUID) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE 1=1`
	args := []any{}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if clientID.Valid {
		args = append(args, clientID.UUID)
		query += fmt.Sprintf(" AND client_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (c *Client) ListProjectsByClient(clientID uuid.UUID) ([]models.Project, error) {
	return c.ListProjects("", uuid.NullUUID{UUID: clientID, Valid: true})
}

// UpdateProject applies a partial update; unset fields keep their values.
func (c *Client) UpdateProject(id uuid.UUID, patch models.ProjectPatch) error {
	set := "updated_at = NOW()"
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set += fmt.Sprintf(", %s = $%d", column, len(args))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Categories != nil {
		add("categories", pq.Array(*patch.Categories))
	}
	if patch.CoverImageKey != nil {
		add("cover_image_key", *patch.CoverImageKey)
	}
	if patch.ProjectExpiresAt != nil {
		add("project_expires_at", *patch.ProjectExpiresAt)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d", set, len(args))
	res, err := c.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return requireRow(res)
}

// DeliverProject marks the project delivered and attaches the share token.
func (c *Client) DeliverProject(id uuid.UUID, token string, shareExpiry, projectExpiry *time.Time) error {
	_, err := c.db.Exec(`
		UPDATE projects
		SET status = 'delivered', share_link_token = $1,
		    share_link_expires_at = $2, project_expires_at = COALESCE($3, project_expires_at),
		    updated_at = NOW()
		WHERE id = $4`,
		token, shareExpiry, projectExpiry, id)
	return err
}

// RescindDelivery returns a delivered project to active and drops its share link.
func (c *Client) RescindDelivery(id uuid.UUID) error {
	_, err := c.db.Exec(`
		UPDATE projects
		SET status = 'active', share_link_token = NULL, share_link_expires_at = NULL, updated_at = NOW()
		WHERE id = $1`, id)
	return err
}

func (c *Client) ArchiveProject(id uuid.UUID) error {
	_, err := c.db.Exec(`
		UPDATE projects SET status = 'archived', updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (c *Client) DeleteProject(id uuid.UUID) error {
	_, err := c.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	return err
}

// ListExpiredActiveProjects returns non-archived projects whose hard expiry
// has passed, for the archival sweep.
func (c *Client) ListExpiredActiveProjects(now time.Time) ([]models.Project, error) {
	rows, err := c.db.Query(`
		SELECT `+projectColumns+` FROM projects
		WHERE status != 'archived' AND project_expires_at IS NOT NULL AND project_expires_at <= $1`,
		now)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}
