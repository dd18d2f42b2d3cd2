// Package gallery decides what a share-link visitor may see. The payment
// gate is evaluated on every request so a status change takes effect
// immediately, with no cached verdicts.
package gallery

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"photostudio-backend/internal/apperr"
	"photostudio-backend/internal/models"
)

// ProjectResolver looks up projects by their share token.
type ProjectResolver interface {
	GetProjectByShareToken(token string) (*models.Project, error)
}

// InvoiceLookup finds the oldest unsettled invoice attached to a project.
type InvoiceLookup interface {
	BlockingInvoiceForProject(projectID uuid.UUID) (*models.Invoice, error)
}

// Access is the per-request verdict for one gallery visit.
type Access struct {
	Project      *models.Project
	Locked       bool
	InvoiceToken string
}

// Gate resolves share links and evaluates the payment lock.
type Gate struct {
	projects ProjectResolver
	invoices InvoiceLookup
	now      func() time.Time
}

func NewGate(projects ProjectResolver, invoices InvoiceLookup) *Gate {
	return &Gate{projects: projects, invoices: invoices, now: time.Now}
}

// Resolve maps a share token to its access verdict. Unknown tokens are
// not found; expired links and archived projects are gone. The two cases
// stay distinct so a visitor with a dead link learns the gallery existed.
func (g *Gate) Resolve(token string) (*Access, error) {
	project, err := g.projects.GetProjectByShareToken(token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("gallery not found")
		}
		return nil, fmt.Errorf("resolve share token: %w", err)
	}

	if project.Status == models.ProjectStatusArchived {
		return nil, apperr.Gone("this gallery has been archived")
	}
	if project.ShareLinkExpiresAt.Valid && g.now().After(project.ShareLinkExpiresAt.Time) {
		return nil, apperr.Gone("this gallery link has expired")
	}

	access := &Access{Project: project}
	invoice, err := g.invoices.BlockingInvoiceForProject(project.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return access, nil
		}
		return nil, fmt.Errorf("check payment gate: %w", err)
	}
	access.Locked = true
	access.InvoiceToken = invoice.Token
	return access, nil
}

const (
	VariantThumbnail  = "thumbnail"
	VariantCompressed = "compressed"
	VariantOriginal   = "original"
)

// Variant returns the object key a visitor may fetch for the asset. A
// locked gallery refuses every download variant; previews while locked come
// from the media listing, which exposes only watermarked renditions.
func Variant(access *Access, m *models.MediaAsset, requested string) (string, error) {
	if access.Locked {
		return "", apperr.PaymentRequired("payment required to download images")
	}
	switch requested {
	case VariantThumbnail:
		return m.ThumbnailKey, nil
	case VariantOriginal:
		return m.OriginalKey, nil
	case VariantCompressed:
		return m.CompressedKey, nil
	default:
		return "", apperr.Validation("unknown image variant " + requested)
	}
}

// ZipFilename names the archive for a gallery download.
func ZipFilename(project *models.Project, selectedOnly bool) string {
	suffix := "all"
	if selectedOnly {
		suffix = "selected"
	}
	return fmt.Sprintf("%s_%s.zip", project.Title, suffix)
}
