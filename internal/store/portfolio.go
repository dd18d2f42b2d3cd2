package store

import (
	"fmt"

	"github.com/google/uuid"

	"photostudio-backend/internal/models"
)

const portfolioColumns = `id, title, description, category, image_key, thumbnail_key,
	sort_order, is_visible, created_at`

func scanPortfolioItem(row interface{ Scan(...any) error }) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.Category,
		&item.ImageKey, &item.ThumbnailKey, &item.SortOrder, &item.IsVisible, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreatePortfolioItem(title, description, category, imageKey, thumbnailKey string, sortOrder int) (*models.PortfolioItem, error) {
	row := c.db.QueryRow(`
		INSERT INTO portfolio_items (title, description, category, image_key, thumbnail_key, sort_order)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6)
		RETURNING `+portfolioColumns,
		title, description, category, imageKey, thumbnailKey, sortOrder)
	item, err := scanPortfolioItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create portfolio item: %w", err)
	}
	return item, nil
}

func (c *Client) GetPortfolioItem(id uuid.UUID, visibleOnly bool) (*models.PortfolioItem, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE id = $1`
	if visibleOnly {
		query += ` AND is_visible = TRUE`
	}
	return scanPortfolioItem(c.db.QueryRow(query, id))
}

// ListPortfolio pages through items; category and visibleOnly narrow the set.
func (c *Client) ListPortfolio(category string, visibleOnly bool, page, limit int) ([]models.PortfolioItem, int, error) {
	where := "1=1"
	args := []any{}
	if visibleOnly {
		where += " AND is_visible = TRUE"
	}
	if category != "" {
		args = append(args, category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}

	var total int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM portfolio_items WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count portfolio items: %w", err)
	}

	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE ` + where + ` ORDER BY sort_order ASC`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, (page-1)*limit)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list portfolio items: %w", err)
	}
	defer rows.Close()

	var items []models.PortfolioItem
	for rows.Next() {
		item, err := scanPortfolioItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan portfolio item: %w", err)
		}
		items = append(items, *item)
	}
	return items, total, rows.Err()
}

func (c *Client) CountPortfolioItems() (int, error) {
	var count int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM portfolio_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count portfolio items: %w", err)
	}
	return count, nil
}

func (c *Client) UpdatePortfolioItem(id uuid.UUID, patch models.PortfolioPatch) error {
	set := ""
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", column, len(args))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.IsVisible != nil {
		add("is_visible", *patch.IsVisible)
	}
	if set == "" {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE portfolio_items SET %s WHERE id = $%d", set, len(args))
	res, err := c.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update portfolio item: %w", err)
	}
	return requireRow(res)
}

func (c *Client) SetPortfolioSortOrder(id uuid.UUID, sortOrder int) error {
	_, err := c.db.Exec(`UPDATE portfolio_items SET sort_order = $1 WHERE id = $2`, sortOrder, id)
	return err
}

func (c *Client) DeletePortfolioItem(id uuid.UUID) error {
	_, err := c.db.Exec(`DELETE FROM portfolio_items WHERE id = $1`, id)
	return err
}
