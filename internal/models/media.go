package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// MediaAsset is one uploaded image within a project. The watermarked key is
// only set when the watermark path ran at upload time.
type MediaAsset struct {
	ID                  uuid.UUID
	ProjectID           uuid.UUID
	OriginalKey         string
	CompressedKey       string
	ThumbnailKey        string
	WatermarkedKey      sql.NullString
	Filename            string
	MimeType            string
	Width               int
	Height              int
	SizeBytes           int64
	CompressedSizeBytes int64
	SortOrder           int
	IsSelected          bool
	UploadedAt          time.Time
}

// StorageKeys returns every object key the asset owns, for deletion.
func (m *MediaAsset) StorageKeys() []string {
	keys := []string{m.OriginalKey, m.CompressedKey, m.ThumbnailKey}
	if m.WatermarkedKey.Valid {
		keys = append(keys, m.WatermarkedKey.String)
	}
	return keys
}
