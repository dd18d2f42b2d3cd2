package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"photostudio-backend/internal/imaging"
	"photostudio-backend/internal/logging"
	"photostudio-backend/internal/models"
	"photostudio-backend/internal/objectstore"
	"photostudio-backend/internal/store"
)

type PortfolioHandler struct {
	store     *store.Client
	objects   *objectstore.Store
	processor *imaging.Processor
}

func NewPortfolioHandler(st *store.Client, objects *objectstore.Store, processor *imaging.Processor) *PortfolioHandler {
	return &PortfolioHandler{store: st, objects: objects, processor: processor}
}

func (h *PortfolioHandler) toItemResponse(c *gin.Context, item *models.PortfolioItem) models.PortfolioItemResponse {
	resp := models.PortfolioItemResponse{
		ID:          item.ID.String(),
		Title:       item.Title,
		Description: item.Description.String,
		Category:    item.Category,
		SortOrder:   item.SortOrder,
		IsVisible:   item.IsVisible,
	}
	presign := func(key string) string {
		url, err := h.objects.PresignDownload(c.Request.Context(), key, presignExpiry)
		if err != nil {
			logging.L().Error().Err(err).Str("key", key).Msg("presign portfolio image")
			return ""
		}
		return url
	}
	resp.ImageURL = presign(item.ImageKey)
	resp.ThumbnailURL = presign(item.ThumbnailKey)
	return resp
}

// CreateItem ingests one portfolio image from a multipart form along with
// its title and category.
func (h *PortfolioHandler) CreateItem(c *gin.Context) {
	title := c.PostForm("title")
	category := c.PostForm("category")
	if title == "" || category == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title and category are required"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no file provided", Message: err.Error()})
		return
	}
	src, err := file.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.processor.ProcessPortfolioImage(c.Request.Context(), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to process image", Message: err.Error()})
		return
	}

	sortOrder, err := h.store.CountPortfolioItems()
	if err != nil {
		respondError(c, err)
		return
	}
	item, err := h.store.CreatePortfolioItem(title, c.PostForm("description"), category,
		result.ImageKey, result.ThumbnailKey, sortOrder)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toItemResponse(c, item))
}

// ListItems serves both surfaces: admins see everything, the public site
// only visible items.
func (h *PortfolioHandler) listItems(c *gin.Context, visibleOnly bool) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "24"))
	if limit < 1 || limit > 100 {
		limit = 24
	}

	items, total, err := h.store.ListPortfolio(c.Query("category"), visibleOnly, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.PortfolioItemResponse, 0, len(items))
	for i := range items {
		out = append(out, h.toItemResponse(c, &items[i]))
	}
	c.JSON(http.StatusOK, models.PortfolioListResponse{Items: out, Total: total, Page: page, Limit: limit})
}

func (h *PortfolioHandler) ListItemsAdmin(c *gin.Context) {
	h.listItems(c, false)
}

func (h *PortfolioHandler) ListItemsPublic(c *gin.Context) {
	h.listItems(c, true)
}

// GetItemPublic serves one visible item for the site's detail view.
func (h *PortfolioHandler) GetItemPublic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid item id"})
		return
	}
	item, err := h.store.GetPortfolioItem(id, true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toItemResponse(c, item))
}

func (h *PortfolioHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid item id"})
		return
	}
	var req models.UpdatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	if req.Empty() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no fields to update"})
		return
	}
	if err := h.store.UpdatePortfolioItem(id, req.Patch()); err != nil {
		respondError(c, err)
		return
	}
	item, err := h.store.GetPortfolioItem(id, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toItemResponse(c, item))
}

func (h *PortfolioHandler) ReorderItems(c *gin.Context) {
	var req models.ReorderPortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	for i, raw := range req.ItemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid item id", Message: raw})
			return
		}
		if err := h.store.SetPortfolioSortOrder(id, i); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "portfolio reordered"})
}

func (h *PortfolioHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid item id"})
		return
	}
	item, err := h.store.GetPortfolioItem(id, false)
	if err != nil {
		respondError(c, err)
		return
	}
	for _, key := range []string{item.ImageKey, item.ThumbnailKey} {
		if err := h.objects.Delete(c.Request.Context(), key); err != nil {
			logging.L().Error().Err(err).Str("key", key).Msg("delete portfolio object")
		}
	}
	if err := h.store.DeletePortfolioItem(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "portfolio item deleted"})
}
