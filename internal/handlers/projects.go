package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"photostudio-backend/internal/logging"
	"photostudio-backend/internal/mail"
	"photostudio-backend/internal/models"
	"photostudio-backend/internal/objectstore"
	"photostudio-backend/internal/store"
	"photostudio-backend/internal/tokens"
)

type ProjectsHandler struct {
	store   *store.Client
	objects *objectstore.Store
	mailer  *mail.Mailer
	clients *ClientsHandler
}

func NewProjectsHandler(st *store.Client, objects *objectstore.Store, mailer *mail.Mailer, clients *ClientsHandler) *ProjectsHandler {
	return &ProjectsHandler{store: st, objects: objects, mailer: mailer, clients: clients}
}

func toProjectResponse(p *models.Project) models.ProjectResponse {
	resp := models.ProjectResponse{
		ID:             p.ID.String(),
		Title:          p.Title,
		Description:    p.Description,
		ClientID:       p.ClientID.String(),
		Status:         p.Status,
		CoverImageKey:  p.CoverImageKey.String,
		Categories:     p.Categories,
		ShareLinkToken: p.ShareLinkToken.String,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.Categories == nil {
		resp.Categories = []string{}
	}
	if p.ShareLinkExpiresAt.Valid {
		t := p.ShareLinkExpiresAt.Time
		resp.ShareLinkExpiresAt = &t
	}
	if p.ProjectExpiresAt.Valid {
		t := p.ProjectExpiresAt.Time
		resp.ProjectExpiresAt = &t
	}
	return resp
}

// CreateProject sets up a project for a client, inviting the client if this
// is their first booking. A linked inquiry flips to booked.
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	client, err := h.clients.ensureClient(req.ClientEmail, req.ClientName)
	if err != nil {
		respondError(c, err)
		return
	}

	project, err := h.store.CreateProject(client.ID, req.Title, req.Description, req.Categories)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.InquiryID != "" {
		inquiryID, err := uuid.Parse(req.InquiryID)
		if err == nil {
			if err := h.store.UpdateInquiryStatus(inquiryID, models.InquiryStatusBooked); err != nil {
				logging.L().Warn().Err(err).Str("inquiry_id", req.InquiryID).Msg("mark inquiry booked")
			}
		}
	}

	c.JSON(http.StatusCreated, toProjectResponse(project))
}

func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	var clientID uuid.NullUUID
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid client id"})
			return
		}
		clientID = uuid.NullUUID{UUID: id, Valid: true}
	}

	projects, err := h.store.ListProjects(c.Query("status"), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectResponse(&projects[i]))
	}
	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: out})
}

func (h *ProjectsHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	project, err := h.store.GetProject(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	if req.Empty() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no fields to update"})
		return
	}
	if err := h.store.UpdateProject(id, req.Patch()); err != nil {
		respondError(c, err)
		return
	}
	project, err := h.store.GetProject(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(project))
}

// DeliverProject publishes the gallery: mints the share link, optionally
// raises the invoice that gates downloads, and emails the client.
func (h *ProjectsHandler) DeliverProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	var req models.DeliverProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	project, err := h.store.GetProject(id)
	if err != nil {
		respondError(c, err)
		return
	}
	count, err := h.store.CountMediaByProject(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if count == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "cannot deliver a project with no images"})
		return
	}

	var shareExpiry, projectExpiry *time.Time
	if req.ShareLinkExpiresAt != nil {
		shareExpiry = req.ShareLinkExpiresAt
	}
	if req.ProjectExpiresAt != nil {
		projectExpiry = req.ProjectExpiresAt
	}

	shareToken := tokens.NewShareToken()
	if err := h.store.DeliverProject(id, shareToken, shareExpiry, projectExpiry); err != nil {
		respondError(c, err)
		return
	}

	resp := models.DeliverProjectResponse{
		ShareLinkToken: shareToken,
		Message:        "project delivered",
	}

	if req.CreateInvoice && len(req.InvoiceLineItems) > 0 {
		var amount int64
		for _, item := range req.InvoiceLineItems {
			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			amount += item.AmountCents * qty
		}
		dueDate := time.Now().AddDate(0, 0, 30)
		if req.InvoiceDueDate != nil {
			dueDate = *req.InvoiceDueDate
		}
		invoice, err := h.store.CreateInvoice(
			project.ClientID,
			uuid.NullUUID{UUID: id, Valid: true},
			amount, models.InvoiceStatusSent, dueDate, req.InvoiceLineItems,
			tokens.NewInvoiceToken(),
		)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.InvoiceToken = invoice.Token
	}

	client, err := h.store.GetUserByID(project.ClientID)
	if err == nil {
		if err := h.mailer.SendGalleryLink(client.Email, client.Name, project.Title, shareToken); err != nil {
			logging.L().Error().Err(err).Str("project_id", id.String()).Msg("send gallery email")
		}
	}

	c.JSON(http.StatusOK, resp)
}

// RescindDelivery pulls the gallery back: the share link stops resolving and
// the project returns to active.
func (h *ProjectsHandler) RescindDelivery(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	if err := h.store.RescindDelivery(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "delivery rescinded"})
}

// ArchiveProject reclaims storage immediately instead of waiting for the
// nightly sweep.
func (h *ProjectsHandler) ArchiveProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	if _, err := h.store.GetProject(id); err != nil {
		respondError(c, err)
		return
	}

	if err := h.objects.DeletePrefix(c.Request.Context(), objectstore.ProjectPrefix(id)); err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.DeleteMediaByProject(id); err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.ArchiveProject(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "project archived"})
}

func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}
	if _, err := h.store.GetProject(id); err != nil {
		respondError(c, err)
		return
	}

	if err := h.objects.DeletePrefix(c.Request.Context(), objectstore.ProjectPrefix(id)); err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.DeleteMediaByProject(id); err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.DeleteProject(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "project deleted"})
}

// ListMyProjects is the client's view of their own projects. Active
// projects stay hidden until delivery.
func (h *ProjectsHandler) ListMyProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projects, err := h.store.ListProjectsByClient(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.ProjectResponse, 0, len(projects))
	for i := range projects {
		if projects[i].Status != models.ProjectStatusDelivered {
			continue
		}
		resp := toProjectResponse(&projects[i])
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: out})
}
