package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"photostudio-backend/internal/gallery"
	"photostudio-backend/internal/logging"
	"photostudio-backend/internal/models"
	"photostudio-backend/internal/objectstore"
	"photostudio-backend/internal/store"
	"photostudio-backend/internal/zipstream"
)

// GalleryHandler serves the share-link surface. Nothing here requires a
// login; the token is the credential, and the payment gate is re-checked on
// every request.
type GalleryHandler struct {
	store   *store.Client
	objects *objectstore.Store
	gate    *gallery.Gate
	media   *MediaHandler
}

func NewGalleryHandler(st *store.Client, objects *objectstore.Store, gate *gallery.Gate, media *MediaHandler) *GalleryHandler {
	return &GalleryHandler{store: st, objects: objects, gate: gate, media: media}
}

func (h *GalleryHandler) resolve(c *gin.Context) (*gallery.Access, bool) {
	access, err := h.gate.Resolve(c.Param("token"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return access, true
}

// GetGallery returns the gallery header for the landing view.
func (h *GalleryHandler) GetGallery(c *gin.Context) {
	access, ok := h.resolve(c)
	if !ok {
		return
	}
	project := access.Project

	resp := models.GalleryResponse{
		Title:       project.Title,
		Description: project.Description,
		Status:      project.Status,
		Categories:  project.Categories,
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	if project.ShareLinkExpiresAt.Valid {
		t := project.ShareLinkExpiresAt.Time
		resp.ShareLinkExpiresAt = &t
	}
	c.JSON(http.StatusOK, resp)
}

// ListMedia returns the gallery's images with URLs for what the visitor may
// see: watermarked previews while locked, full previews once the invoice is
// settled.
func (h *GalleryHandler) ListMedia(c *gin.Context) {
	access, ok := h.resolve(c)
	if !ok {
		return
	}

	media, err := h.store.ListMediaByProject(access.Project.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]models.MediaResponse, 0, len(media))
	for i := range media {
		var resp models.MediaResponse
		if access.Locked {
			resp = h.media.toMediaResponse(c, &media[i], "thumbnail", "watermarked")
		} else {
			resp = h.media.toMediaResponse(c, &media[i], "thumbnail", "compressed")
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, models.MediaListResponse{
		Media:        out,
		Locked:       access.Locked,
		InvoiceToken: access.InvoiceToken,
	})
}

// SelectMedia records the client's photo picks through the share link.
func (h *GalleryHandler) SelectMedia(c *gin.Context) {
	access, ok := h.resolve(c)
	if !ok {
		return
	}

	var req models.SelectMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	mediaIDs := make([]uuid.UUID, 0, len(req.MediaIDs))
	for _, raw := range req.MediaIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid media id", Message: raw})
			return
		}
		mediaIDs = append(mediaIDs, id)
	}

	if err := h.store.SetMediaSelection(access.Project.ID, mediaIDs, req.Selected); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "selection updated"})
}

// DownloadImage redirects to a presigned URL for one image. Every download
// is refused while the payment gate is closed; locked visitors preview
// through the media listing instead.
func (h *GalleryHandler) DownloadImage(c *gin.Context) {
	access, ok := h.resolve(c)
	if !ok {
		return
	}
	if access.Locked {
		respondLocked(c, access.InvoiceToken)
		return
	}

	mediaID, err := uuid.Parse(c.Param("media_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid media id"})
		return
	}
	asset, err := h.store.GetMedia(mediaID, access.Project.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	variant := c.DefaultQuery("variant", gallery.VariantOriginal)
	key, err := gallery.Variant(access, asset, variant)
	if err != nil {
		respondError(c, err)
		return
	}

	url, err := h.objects.PresignDownload(c.Request.Context(), key, presignExpiry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// DownloadZip streams the gallery's originals as a ZIP, one object at a
// time. Locked galleries get a 402 before any bytes move.
func (h *GalleryHandler) DownloadZip(c *gin.Context) {
	access, ok := h.resolve(c)
	if !ok {
		return
	}
	if access.Locked {
		respondLocked(c, access.InvoiceToken)
		return
	}

	selectedOnly := c.Query("selected") == "true"
	var media []models.MediaAsset
	var err error
	if selectedOnly {
		media, err = h.store.ListSelectedMedia(access.Project.ID)
	} else {
		media, err = h.store.ListMediaByProject(access.Project.ID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	h.streamZip(c, access, media, gallery.ZipFilename(access.Project, selectedOnly))
}

// ExportForPrint streams the selected originals packaged for a print lab.
func (h *GalleryHandler) ExportForPrint(c *gin.Context) {
	access, ok := h.resolve(c)
	if !ok {
		return
	}
	if access.Locked {
		respondLocked(c, access.InvoiceToken)
		return
	}

	media, err := h.store.ListSelectedMedia(access.Project.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.streamZip(c, access, media, fmt.Sprintf("%s_print.zip", access.Project.Title))
}

func (h *GalleryHandler) streamZip(c *gin.Context, access *gallery.Access, media []models.MediaAsset, filename string) {
	items := make([]zipstream.Item, 0, len(media))
	for i := range media {
		items = append(items, zipstream.Item{
			Key:      media[i].OriginalKey,
			Filename: media[i].Filename,
		})
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no images to download"})
		return
	}

	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	fetch := func(ctx context.Context, key string) (io.ReadCloser, error) {
		return h.objects.Open(ctx, key)
	}
	if err := zipstream.Stream(c.Request.Context(), c.Writer, items, fetch); err != nil {
		// headers are gone; log and cut the connection
		logging.L().Error().Err(err).Str("project_id", access.Project.ID.String()).Msg("zip stream aborted")
		c.Abort()
	}
}
