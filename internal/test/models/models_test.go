package models_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"photostudio-backend/internal/models"
)

func TestInvoiceBlocking(t *testing.T) {
	cases := map[string]bool{
		models.InvoiceStatusDraft: true,
		models.InvoiceStatusSent:  true,
		models.InvoiceStatusPaid:  false,
		models.InvoiceStatusVoid:  false,
	}
	for status, blocking := range cases {
		inv := &models.Invoice{Status: status}
		assert.Equal(t, blocking, inv.Blocking(), status)
	}
}

func TestValidInvoiceStatus(t *testing.T) {
	assert.True(t, models.ValidInvoiceStatus("paid"))
	assert.True(t, models.ValidInvoiceStatus("void"))
	assert.False(t, models.ValidInvoiceStatus("overdue"))
	assert.False(t, models.ValidInvoiceStatus(""))
}

func TestMediaStorageKeys(t *testing.T) {
	m := &models.MediaAsset{
		OriginalKey:   "o",
		CompressedKey: "c",
		ThumbnailKey:  "t",
	}
	assert.Equal(t, []string{"o", "c", "t"}, m.StorageKeys())

	m.WatermarkedKey = sql.NullString{String: "w", Valid: true}
	assert.Equal(t, []string{"o", "c", "t", "w"}, m.StorageKeys())
}

func TestUpdateProjectRequestEmpty(t *testing.T) {
	var req models.UpdateProjectRequest
	assert.True(t, req.Empty())

	title := "New Title"
	req.Title = &title
	assert.False(t, req.Empty())
	assert.Equal(t, &title, req.Patch().Title)
}

func TestUpdatePricingRequestEmpty(t *testing.T) {
	var req models.UpdatePricingRequest
	assert.True(t, req.Empty())

	visible := false
	req.IsVisible = &visible
	assert.False(t, req.Empty())
}
