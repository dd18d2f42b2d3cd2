package gallery_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photostudio-backend/internal/apperr"
	"photostudio-backend/internal/gallery"
	"photostudio-backend/internal/models"
)

type fakeProjects struct {
	projects map[string]*models.Project
}

func (f *fakeProjects) GetProjectByShareToken(token string) (*models.Project, error) {
	p, ok := f.projects[token]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

type fakeInvoices struct {
	blocking map[uuid.UUID]*models.Invoice
}

func (f *fakeInvoices) BlockingInvoiceForProject(projectID uuid.UUID) (*models.Invoice, error) {
	inv, ok := f.blocking[projectID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return inv, nil
}

func deliveredProject(token string) *models.Project {
	return &models.Project{
		ID:             uuid.New(),
		Title:          "Smith Wedding",
		Status:         models.ProjectStatusDelivered,
		ShareLinkToken: sql.NullString{String: token, Valid: true},
	}
}

func newGate(projects map[string]*models.Project, blocking map[uuid.UUID]*models.Invoice) *gallery.Gate {
	return gallery.NewGate(&fakeProjects{projects: projects}, &fakeInvoices{blocking: blocking})
}

func TestResolve_UnknownTokenIsNotFound(t *testing.T) {
	gate := newGate(nil, nil)

	_, err := gate.Resolve("nope")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestResolve_ArchivedProjectIsGone(t *testing.T) {
	project := deliveredProject("tok")
	project.Status = models.ProjectStatusArchived
	gate := newGate(map[string]*models.Project{"tok": project}, nil)

	_, err := gate.Resolve("tok")
	require.Error(t, err)
	assert.Equal(t, apperr.KindGone, apperr.KindOf(err))
}

func TestResolve_ExpiredLinkIsGone(t *testing.T) {
	project := deliveredProject("tok")
	project.ShareLinkExpiresAt = sql.NullTime{Time: time.Now().Add(-time.Hour), Valid: true}
	gate := newGate(map[string]*models.Project{"tok": project}, nil)

	_, err := gate.Resolve("tok")
	require.Error(t, err)
	assert.Equal(t, apperr.KindGone, apperr.KindOf(err))
}

func TestResolve_UnpaidInvoiceLocks(t *testing.T) {
	project := deliveredProject("tok")
	invoice := &models.Invoice{
		ID:     uuid.New(),
		Status: models.InvoiceStatusSent,
		Token:  "inv-token",
	}
	gate := newGate(
		map[string]*models.Project{"tok": project},
		map[uuid.UUID]*models.Invoice{project.ID: invoice},
	)

	access, err := gate.Resolve("tok")
	require.NoError(t, err)
	assert.True(t, access.Locked)
	assert.Equal(t, "inv-token", access.InvoiceToken)
}

func TestResolve_NoBlockingInvoiceUnlocks(t *testing.T) {
	project := deliveredProject("tok")
	gate := newGate(map[string]*models.Project{"tok": project}, nil)

	access, err := gate.Resolve("tok")
	require.NoError(t, err)
	assert.False(t, access.Locked)
	assert.Empty(t, access.InvoiceToken)
}

func TestResolve_ReevaluatesLockOnEveryCall(t *testing.T) {
	project := deliveredProject("tok")
	invoice := &models.Invoice{
		ID:     uuid.New(),
		Status: models.InvoiceStatusSent,
		Token:  "inv-token",
	}
	invoices := &fakeInvoices{blocking: map[uuid.UUID]*models.Invoice{project.ID: invoice}}
	gate := gallery.NewGate(&fakeProjects{projects: map[string]*models.Project{"tok": project}}, invoices)

	access, err := gate.Resolve("tok")
	require.NoError(t, err)
	require.True(t, access.Locked)

	// the invoice gets settled between two visits
	delete(invoices.blocking, project.ID)

	access, err = gate.Resolve("tok")
	require.NoError(t, err)
	assert.False(t, access.Locked, "a settled invoice should unlock the next request")
	assert.Empty(t, access.InvoiceToken)
}

func testAsset() *models.MediaAsset {
	return &models.MediaAsset{
		OriginalKey:    "projects/p/originals/i.jpg",
		CompressedKey:  "projects/p/compressed/i.jpg",
		ThumbnailKey:   "projects/p/thumbnails/i.jpg",
		WatermarkedKey: sql.NullString{String: "projects/p/watermarked/i.jpg", Valid: true},
	}
}

func TestVariant_UnlockedServesRequested(t *testing.T) {
	access := &gallery.Access{Locked: false}
	asset := testAsset()

	key, err := gallery.Variant(access, asset, gallery.VariantOriginal)
	require.NoError(t, err)
	assert.Equal(t, asset.OriginalKey, key)

	key, err = gallery.Variant(access, asset, gallery.VariantCompressed)
	require.NoError(t, err)
	assert.Equal(t, asset.CompressedKey, key)
}

func TestVariant_LockedRefusesEveryVariant(t *testing.T) {
	access := &gallery.Access{Locked: true}
	asset := testAsset()

	for _, variant := range []string{
		gallery.VariantOriginal,
		gallery.VariantCompressed,
		gallery.VariantThumbnail,
	} {
		_, err := gallery.Variant(access, asset, variant)
		require.Error(t, err, variant)
		assert.Equal(t, apperr.KindPaymentRequired, apperr.KindOf(err), variant)
	}
}

func TestVariant_UnknownVariantIsValidationError(t *testing.T) {
	access := &gallery.Access{Locked: false}

	_, err := gallery.Variant(access, testAsset(), "raw")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestZipFilename(t *testing.T) {
	project := &models.Project{Title: "Smith Wedding"}
	assert.Equal(t, "Smith Wedding_all.zip", gallery.ZipFilename(project, false))
	assert.Equal(t, "Smith Wedding_selected.zip", gallery.ZipFilename(project, true))
}
