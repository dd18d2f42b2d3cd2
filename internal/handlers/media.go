package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"photostudio-backend/internal/imaging"
	"photostudio-backend/internal/logging"
	"photostudio-backend/internal/models"
	"photostudio-backend/internal/objectstore"
	"photostudio-backend/internal/store"
)

type MediaHandler struct {
	store     *store.Client
	objects   *objectstore.Store
	processor *imaging.Processor
}

func NewMediaHandler(st *store.Client, objects *objectstore.Store, processor *imaging.Processor) *MediaHandler {
	return &MediaHandler{store: st, objects: objects, processor: processor}
}

// toMediaResponse presigns URLs for the variants the caller may see.
// Passing an empty variant list yields metadata only.
func (h *MediaHandler) toMediaResponse(c *gin.Context, m *models.MediaAsset, variants ...string) models.MediaResponse {
	resp := models.MediaResponse{
		ID:                  m.ID.String(),
		ProjectID:           m.ProjectID.String(),
		Filename:            m.Filename,
		MimeType:            m.MimeType,
		Width:               m.Width,
		Height:              m.Height,
		SizeBytes:           m.SizeBytes,
		CompressedSizeBytes: m.CompressedSizeBytes,
		SortOrder:           m.SortOrder,
		IsSelected:          m.IsSelected,
		UploadedAt:          m.UploadedAt,
	}

	presign := func(key string) string {
		if key == "" {
			return ""
		}
		url, err := h.objects.PresignDownload(c.Request.Context(), key, presignExpiry)
		if err != nil {
			logging.L().Error().Err(err).Str("key", key).Msg("presign download")
			return ""
		}
		return url
	}

	for _, variant := range variants {
		switch variant {
		case "original":
			resp.OriginalURL = presign(m.OriginalKey)
		case "compressed":
			resp.CompressedURL = presign(m.CompressedKey)
		case "thumbnail":
			resp.ThumbnailURL = presign(m.ThumbnailKey)
		case "watermarked":
			resp.WatermarkedURL = presign(m.WatermarkedKey.String)
		}
	}
	return resp
}

// UploadMedia ingests a batch of images from a multipart form. Each file is
// processed independently; failures are reported per file and do not roll
// back siblings that already landed.
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	if _, err := h.store.GetProject(projectID); err != nil {
		respondError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid multipart form", Message: err.Error()})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no files provided"})
		return
	}

	sortOrder, err := h.store.CountMediaByProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	var mediaIDs []string
	var uploadErrors []models.UploadErrorInfo
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			uploadErrors = append(uploadErrors, models.UploadErrorInfo{Filename: file.Filename, Error: err.Error(), Stage: "read"})
			continue
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			uploadErrors = append(uploadErrors, models.UploadErrorInfo{Filename: file.Filename, Error: err.Error(), Stage: "read"})
			continue
		}

		contentType := file.Header.Get("Content-Type")
		result, err := h.processor.ProcessProjectImage(c.Request.Context(), projectID, data, contentType)
		if err != nil {
			stage := "process"
			var stageErr *imaging.StageError
			if errors.As(err, &stageErr) {
				stage = stageErr.Stage
			}
			uploadErrors = append(uploadErrors, models.UploadErrorInfo{Filename: file.Filename, Error: err.Error(), Stage: stage})
			continue
		}

		asset := &models.MediaAsset{
			ID:                  result.ImageID,
			ProjectID:           projectID,
			OriginalKey:         result.OriginalKey,
			CompressedKey:       result.CompressedKey,
			ThumbnailKey:        result.ThumbnailKey,
			Filename:            file.Filename,
			MimeType:            contentType,
			Width:               result.Width,
			Height:              result.Height,
			SizeBytes:           result.SizeBytes,
			CompressedSizeBytes: result.CompressedSizeBytes,
			SortOrder:           sortOrder,
		}
		asset.WatermarkedKey.String = result.WatermarkedKey
		asset.WatermarkedKey.Valid = true

		created, err := h.store.CreateMedia(asset)
		if err != nil {
			uploadErrors = append(uploadErrors, models.UploadErrorInfo{Filename: file.Filename, Error: err.Error(), Stage: "persist"})
			continue
		}
		mediaIDs = append(mediaIDs, created.ID.String())
		sortOrder++
	}

	status := http.StatusCreated
	if len(mediaIDs) == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, models.UploadMediaResponse{
		MediaIDs: mediaIDs,
		Errors:   uploadErrors,
		Message:  "upload processed",
	})
}

// PresignUpload hands the admin UI a direct PUT URL for very large
// originals that should not pass through the API process. The returned key
// can then be registered through the normal upload flow.
func (h *MediaHandler) PresignUpload(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	if _, err := h.store.GetProject(projectID); err != nil {
		respondError(c, err)
		return
	}

	key := objectstore.OriginalKey(projectID, uuid.New())
	url, err := h.objects.PresignUpload(c.Request.Context(), key, presignExpiry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"upload_url": url, "key": key})
}

// ListMedia is the admin view, with every variant presigned.
func (h *MediaHandler) ListMedia(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	media, err := h.store.ListMediaByProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.MediaResponse, 0, len(media))
	for i := range media {
		out = append(out, h.toMediaResponse(c, &media[i], "original", "compressed", "thumbnail", "watermarked"))
	}
	c.JSON(http.StatusOK, models.MediaListResponse{Media: out})
}

// ListMyProjectMedia is the authenticated client view of a delivered
// project, with the same lock rules as the share link.
func (h *MediaHandler) ListMyProjectMedia(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	project, err := h.store.GetProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	if project.ClientID != userID || project.Status != models.ProjectStatusDelivered {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not_found", Message: "resource not found"})
		return
	}

	locked := false
	invoiceToken := ""
	if invoice, err := h.store.BlockingInvoiceForProject(projectID); err == nil {
		locked = true
		invoiceToken = invoice.Token
	} else if !store.IsNotFound(err) {
		respondError(c, err)
		return
	}

	media, err := h.store.ListMediaByProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.MediaResponse, 0, len(media))
	for i := range media {
		if locked {
			out = append(out, h.toMediaResponse(c, &media[i], "thumbnail", "watermarked"))
		} else {
			out = append(out, h.toMediaResponse(c, &media[i], "thumbnail", "compressed", "original"))
		}
	}
	c.JSON(http.StatusOK, models.MediaListResponse{Media: out, Locked: locked, InvoiceToken: invoiceToken})
}

// ReorderMedia rewrites sort order to match the given ID sequence.
func (h *MediaHandler) ReorderMedia(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	var req models.ReorderMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	for i, raw := range req.MediaIDs {
		mediaID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid media id", Message: raw})
			return
		}
		if err := h.store.SetMediaSortOrder(projectID, mediaID, i); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "media reordered"})
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	mediaID, err := uuid.Parse(c.Param("media_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid media id"})
		return
	}

	asset, err := h.store.GetMedia(mediaID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	for _, key := range asset.StorageKeys() {
		if err := h.objects.Delete(c.Request.Context(), key); err != nil {
			logging.L().Error().Err(err).Str("key", key).Msg("delete media object")
		}
	}
	if err := h.store.DeleteMedia(mediaID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "media deleted"})
}
