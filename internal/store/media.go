package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"photostudio-backend/internal/models"
)

const mediaColumns = `id, project_id, original_key, compressed_key, thumbnail_key, watermarked_key,
	filename, mime_type, width, height, size_bytes, compressed_size_bytes,
	sort_order, is_selected, uploaded_at`

func scanMedia(row interface{ Scan(...any) error }) (*models.MediaAsset, error) {
	var m models.MediaAsset
	err := row.Scan(
		&m.ID, &m.ProjectID, &m.OriginalKey, &m.CompressedKey, &m.ThumbnailKey, &m.WatermarkedKey,
		&m.Filename, &m.MimeType, &m.Width, &m.Height, &m.SizeBytes, &m.CompressedSizeBytes,
		&m.SortOrder, &m.IsSelected, &m.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) CreateMedia(m *models.MediaAsset) (*models.MediaAsset, error) {
	row := c.db.QueryRow(`
		INSERT INTO media (project_id, original_key, compressed_key, thumbnail_key, watermarked_key,
			filename, mime_type, width, height, size_bytes, compressed_size_bytes, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+mediaColumns,
		m.ProjectID, m.OriginalKey, m.CompressedKey, m.ThumbnailKey, m.WatermarkedKey,
		m.Filename, m.MimeType, m.Width, m.Height, m.SizeBytes, m.CompressedSizeBytes, m.SortOrder)
	created, err := scanMedia(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create media: %w", err)
	}
	return created, nil
}

func (c *Client) GetMedia(id, projectID uuid.UUID) (*models.MediaAsset, error) {
	row := c.db.QueryRow(`
		SELECT `+mediaColumns+` FROM media WHERE id = $1 AND project_id = $2`, id, projectID)
	return scanMedia(row)
}

func (c *Client) listMedia(query string, args ...any) ([]models.MediaAsset, error) {
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	defer rows.Close()

	var assets []models.MediaAsset
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan media: %w", err)
		}
		assets = append(assets, *m)
	}
	return assets, rows.Err()
}

func (c *Client) ListMediaByProject(projectID uuid.UUID) ([]models.MediaAsset, error) {
	return c.listMedia(`
		SELECT `+mediaColumns+` FROM media WHERE project_id = $1 ORDER BY sort_order ASC`, projectID)
}

func (c *Client) ListSelectedMedia(projectID uuid.UUID) ([]models.MediaAsset, error) {
	return c.listMedia(`
		SELECT `+mediaColumns+` FROM media
		WHERE project_id = $1 AND is_selected = TRUE ORDER BY sort_order ASC`, projectID)
}

func (c *Client) CountMediaByProject(projectID uuid.UUID) (int, error) {
	var count int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM media WHERE project_id = $1`, projectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count media: %w", err)
	}
	return count, nil
}

// SetMediaSelection flips the selection flag on the given assets, scoped to
// the project so a token for one gallery cannot touch another.
func (c *Client) SetMediaSelection(projectID uuid.UUID, mediaIDs []uuid.UUID, selected bool) error {
	_, err := c.db.Exec(`
		UPDATE media SET is_selected = $1 WHERE project_id = $2 AND id = ANY($3)`,
		selected, projectID, pq.Array(mediaIDs))
	return err
}

// SetMediaSortOrder writes one asset's position. Reorders issue one call per
// asset; races between concurrent reorders are last-writer-wins.
func (c *Client) SetMediaSortOrder(projectID, mediaID uuid.UUID, sortOrder int) error {
	_, err := c.db.Exec(`
		UPDATE media SET sort_order = $1 WHERE id = $2 AND project_id = $3`,
		sortOrder, mediaID, projectID)
	return err
}

func (c *Client) DeleteMedia(id uuid.UUID) error {
	_, err := c.db.Exec(`DELETE FROM media WHERE id = $1`, id)
	return err
}

func (c *Client) DeleteMediaByProject(projectID uuid.UUID) error {
	_, err := c.db.Exec(`DELETE FROM media WHERE project_id = $1`, projectID)
	return err
}
