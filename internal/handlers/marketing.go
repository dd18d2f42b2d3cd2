package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"photostudio-backend/internal/models"
	"photostudio-backend/internal/store"
)

// MarketingHandler covers the public site feed and its admin side: pricing
// packages, booking inquiries, reviews and site settings.
type MarketingHandler struct {
	store *store.Client
}

func NewMarketingHandler(st *store.Client) *MarketingHandler {
	return &MarketingHandler{store: st}
}

func toPricingResponse(p *models.PricingPackage) models.PricingResponse {
	resp := models.PricingResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		PriceCents:   p.PriceCents,
		PriceDisplay: p.PriceDisplay,
		Features:     p.Features,
		IsCustom:     p.IsCustom,
		SortOrder:    p.SortOrder,
		IsVisible:    p.IsVisible,
	}
	if resp.Features == nil {
		resp.Features = []string{}
	}
	return resp
}

func (h *MarketingHandler) listPricing(c *gin.Context, visibleOnly bool) {
	packages, err := h.store.ListPricingPackages(visibleOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.PricingResponse, 0, len(packages))
	for i := range packages {
		out = append(out, toPricingResponse(&packages[i]))
	}
	c.JSON(http.StatusOK, models.PricingListResponse{Packages: out})
}

func (h *MarketingHandler) ListPricingPublic(c *gin.Context) { h.listPricing(c, true) }
func (h *MarketingHandler) ListPricingAdmin(c *gin.Context)  { h.listPricing(c, false) }

func (h *MarketingHandler) CreatePricing(c *gin.Context) {
	var req models.CreatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	sortOrder := 0
	if existing, err := h.store.ListPricingPackages(false); err == nil {
		sortOrder = len(existing)
	}
	pkg, err := h.store.CreatePricingPackage(req.Name, req.Description, req.PriceCents,
		req.PriceDisplay, req.Features, req.IsCustom, sortOrder)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPricingResponse(pkg))
}

func (h *MarketingHandler) UpdatePricing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("package_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid package id"})
		return
	}
	var req models.UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	if req.Empty() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no fields to update"})
		return
	}
	pkg, err := h.store.UpdatePricingPackage(id, req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPricingResponse(pkg))
}

func (h *MarketingHandler) ReorderPricing(c *gin.Context) {
	var req models.ReorderPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	ids := make([]uuid.UUID, 0, len(req.PackageIDs))
	for _, raw := range req.PackageIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid package id", Message: raw})
			return
		}
		ids = append(ids, id)
	}
	if err := h.store.SetPricingSortOrder(ids); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "pricing reordered"})
}

func (h *MarketingHandler) DeletePricing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("package_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid package id"})
		return
	}
	if err := h.store.DeletePricingPackage(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "pricing package deleted"})
}

// Inquiries

func toInquiryResponse(q *models.Inquiry) models.InquiryResponse {
	resp := models.InquiryResponse{
		ID:        q.ID.String(),
		Name:      q.Name,
		Email:     q.Email,
		Phone:     q.Phone.String,
		Message:   q.Message,
		Status:    q.Status,
		CreatedAt: q.CreatedAt,
	}
	if q.PackageID.Valid {
		resp.PackageID = q.PackageID.UUID.String()
	}
	if q.EventDate.Valid {
		t := q.EventDate.Time
		resp.EventDate = &t
	}
	return resp
}

// CreateInquiry is the public booking form.
func (h *MarketingHandler) CreateInquiry(c *gin.Context) {
	var req models.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	inquiry := &models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if req.Phone != "" {
		inquiry.Phone.String = req.Phone
		inquiry.Phone.Valid = true
	}
	if req.PackageID != "" {
		pkgID, err := uuid.Parse(req.PackageID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid package id"})
			return
		}
		inquiry.PackageID = uuid.NullUUID{UUID: pkgID, Valid: true}
	}
	if req.EventDate != nil {
		inquiry.EventDate.Time = *req.EventDate
		inquiry.EventDate.Valid = true
	}

	created, err := h.store.CreateInquiry(inquiry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toInquiryResponse(created))
}

func (h *MarketingHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.store.ListInquiries(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		out = append(out, toInquiryResponse(&inquiries[i]))
	}
	c.JSON(http.StatusOK, models.InquiryListResponse{Inquiries: out})
}

func (h *MarketingHandler) UpdateInquiryStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("inquiry_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid inquiry id"})
		return
	}
	var req models.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	switch req.Status {
	case models.InquiryStatusNew, models.InquiryStatusBooked, models.InquiryStatusClosed:
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid inquiry status", Message: req.Status})
		return
	}
	if err := h.store.UpdateInquiryStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "inquiry updated"})
}

// Reviews

func toReviewResponse(r *models.Review) models.ReviewResponse {
	return models.ReviewResponse{
		ID:         r.ID.String(),
		AuthorName: r.AuthorName,
		Rating:     r.Rating,
		Body:       r.Body,
		IsApproved: r.IsApproved,
		CreatedAt:  r.CreatedAt,
	}
}

// CreateReview accepts a public review submission. Reviews stay hidden
// until an admin approves them.
func (h *MarketingHandler) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	var projectID uuid.NullUUID
	if req.ProjectID != "" {
		id, err := uuid.Parse(req.ProjectID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
			return
		}
		projectID = uuid.NullUUID{UUID: id, Valid: true}
	}

	review, err := h.store.CreateReview(req.AuthorName, req.Email, req.Rating, req.Body, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(review))
}

func (h *MarketingHandler) listReviews(c *gin.Context, approvedOnly bool) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	reviews, total, err := h.store.ListReviews(approvedOnly, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, models.ReviewListResponse{Reviews: out, Total: total, Page: page, Limit: limit})
}

func (h *MarketingHandler) ListReviewsPublic(c *gin.Context) { h.listReviews(c, true) }
func (h *MarketingHandler) ListReviewsAdmin(c *gin.Context)  { h.listReviews(c, false) }

func (h *MarketingHandler) ApproveReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("review_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid review id"})
		return
	}
	if err := h.store.ApproveReview(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "review approved"})
}

func (h *MarketingHandler) DeleteReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("review_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid review id"})
		return
	}
	if err := h.store.DeleteReview(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "review deleted"})
}

// Site settings

func (h *MarketingHandler) GetSetting(c *gin.Context) {
	setting, err := h.store.GetSetting(c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SettingResponse{Key: setting.Key, Value: setting.Value})
}

func (h *MarketingHandler) UpsertSetting(c *gin.Context) {
	var req models.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	key := c.Param("key")
	if err := h.store.UpsertSetting(key, req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SettingResponse{Key: key, Value: req.Value})
}
