package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"photostudio-backend/internal/models"
)

// Pricing packages

const pricingColumns = `id, name, description, price_cents, price_display, features,
	is_custom, sort_order, is_visible, created_at, updated_at`

func scanPricing(row interface{ Scan(...any) error }) (*models.PricingPackage, error) {
	var p models.PricingPackage
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.PriceDisplay, &p.Features,
		&p.IsCustom, &p.SortOrder, &p.IsVisible, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreatePricingPackage(name, description string, priceCents int64, priceDisplay string,
	features []string, isCustom bool, sortOrder int) (*models.PricingPackage, error) {

	if features == nil {
		features = []string{}
	}
	row := c.db.QueryRow(`
		INSERT INTO pricing_packages (name, description, price_cents, price_display, features, is_custom, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+pricingColumns,
		name, description, priceCents, priceDisplay, pq.Array(features), isCustom, sortOrder)
	p, err := scanPricing(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create pricing package: %w", err)
	}
	return p, nil
}

func (c *Client) ListPricingPackages(visibleOnly bool) ([]models.PricingPackage, error) {
	query := `SELECT ` + pricingColumns + ` FROM pricing_packages`
	if visibleOnly {
		query += ` WHERE is_visible = TRUE`
	}
	query += ` ORDER BY sort_order ASC`

	rows, err := c.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing packages: %w", err)
	}
	defer rows.Close()

	var packages []models.PricingPackage
	for rows.Next() {
		p, err := scanPricing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pricing package: %w", err)
		}
		packages = append(packages, *p)
	}
	return packages, rows.Err()
}

func (c *Client) UpdatePricingPackage(id uuid.UUID, patch models.PricingPatch) (*models.PricingPackage, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.PriceCents != nil {
		add("price_cents", *patch.PriceCents)
	}
	if patch.PriceDisplay != nil {
		add("price_display", *patch.PriceDisplay)
	}
	if patch.Features != nil {
		add("features", pq.Array(patch.Features))
	}
	if patch.IsCustom != nil {
		add("is_custom", *patch.IsCustom)
	}
	if patch.IsVisible != nil {
		add("is_visible", *patch.IsVisible)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE pricing_packages SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), pricingColumns)

	p, err := scanPricing(c.db.QueryRow(query, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to update pricing package: %w", err)
	}
	return p, nil
}

func (c *Client) SetPricingSortOrder(ids []uuid.UUID) error {
	for i, id := range ids {
		if _, err := c.db.Exec(`UPDATE pricing_packages SET sort_order = $1, updated_at = NOW() WHERE id = $2`, i, id); err != nil {
			return fmt.Errorf("failed to reorder pricing packages: %w", err)
		}
	}
	return nil
}

func (c *Client) DeletePricingPackage(id uuid.UUID) error {
	_, err := c.db.Exec(`DELETE FROM pricing_packages WHERE id = $1`, id)
	return err
}

// Reviews

const reviewColumns = `id, author_name, email, rating, body, is_approved, project_id, created_at`

func scanReview(row interface{ Scan(...any) error }) (*models.Review, error) {
	var r models.Review
	err := row.Scan(
		&r.ID, &r.AuthorName, &r.Email, &r.Rating, &r.Body, &r.IsApproved, &r.ProjectID, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) CreateReview(authorName, email string, rating int, body string, projectID uuid.NullUUID) (*models.Review, error) {
	row := c.db.QueryRow(`
		INSERT INTO reviews (author_name, email, rating, body, project_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+reviewColumns,
		authorName, email, rating, body, projectID)
	r, err := scanReview(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return r, nil
}

// ListReviews pages through reviews; approvedOnly is the public view.
func (c *Client) ListReviews(approvedOnly bool, page, limit int) ([]models.Review, int, error) {
	where := "1=1"
	if approvedOnly {
		where = "is_approved = TRUE"
	}

	var total int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM reviews WHERE " + where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE ` + where + ` ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		args = append(args, limit, (page-1)*limit)
		query += " LIMIT $1 OFFSET $2"
	}

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, *r)
	}
	return reviews, total, rows.Err()
}

func (c *Client) ApproveReview(id uuid.UUID) error {
	res, err := c.db.Exec(`UPDATE reviews SET is_approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to approve review: %w", err)
	}
	return requireRow(res)
}

func (c *Client) DeleteReview(id uuid.UUID) error {
	_, err := c.db.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	return err
}

// Inquiries

const inquiryColumns = `id, name, email, phone, package_id, message, event_date, status, created_at`

func scanInquiry(row interface{ Scan(...any) error }) (*models.Inquiry, error) {
	var q models.Inquiry
	err := row.Scan(
		&q.ID, &q.Name, &q.Email, &q.Phone, &q.PackageID, &q.Message, &q.EventDate, &q.Status, &q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) CreateInquiry(q *models.Inquiry) (*models.Inquiry, error) {
	row := c.db.QueryRow(`
		INSERT INTO inquiries (name, email, phone, package_id, message, event_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+inquiryColumns,
		q.Name, q.Email, q.Phone, q.PackageID, q.Message, q.EventDate)
	created, err := scanInquiry(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}
	return created, nil
}

func (c *Client) ListInquiries(status string) ([]models.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, *q)
	}
	return inquiries, rows.Err()
}

func (c *Client) UpdateInquiryStatus(id uuid.UUID, status string) error {
	res, err := c.db.Exec(`UPDATE inquiries SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}
	return requireRow(res)
}

// Site settings

func (c *Client) GetSetting(key string) (*models.SiteSetting, error) {
	var s models.SiteSetting
	err := c.db.QueryRow(`SELECT key, value FROM site_settings WHERE key = $1`, key).Scan(&s.Key, &s.Value)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) UpsertSetting(key string, value json.RawMessage) error {
	_, err := c.db.Exec(`
		INSERT INTO site_settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value)
	return err
}
