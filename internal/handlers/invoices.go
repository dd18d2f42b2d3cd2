package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"photostudio-backend/internal/logging"
	"photostudio-backend/internal/mail"
	"photostudio-backend/internal/models"
	"photostudio-backend/internal/payments"
	"photostudio-backend/internal/store"
	"photostudio-backend/internal/tokens"
)

type InvoicesHandler struct {
	store  *store.Client
	stripe *payments.Client
	mailer *mail.Mailer
}

func NewInvoicesHandler(st *store.Client, stripe *payments.Client, mailer *mail.Mailer) *InvoicesHandler {
	return &InvoicesHandler{store: st, stripe: stripe, mailer: mailer}
}

func toInvoiceResponse(inv *models.Invoice, includeToken bool) models.InvoiceResponse {
	resp := models.InvoiceResponse{
		ID:              inv.ID.String(),
		ClientID:        inv.ClientID.String(),
		StripeInvoiceID: inv.StripeInvoiceID.String,
		AmountCents:     inv.AmountCents,
		Status:          inv.Status,
		DueDate:         inv.DueDate,
		CreatedAt:       inv.CreatedAt,
	}
	if inv.ProjectID.Valid {
		resp.ProjectID = inv.ProjectID.UUID.String()
	}
	if includeToken {
		resp.Token = inv.Token
	}
	if inv.PaidAt.Valid {
		t := inv.PaidAt.Time
		resp.PaidAt = &t
	}
	if len(inv.LineItems) > 0 {
		if err := json.Unmarshal(inv.LineItems, &resp.LineItems); err != nil {
			logging.L().Warn().Err(err).Str("invoice_id", resp.ID).Msg("decode line items")
		}
	}
	return resp
}

// CreateInvoice raises a standalone invoice, optionally mirroring it to the
// payment provider for hosted payment.
func (h *InvoicesHandler) CreateInvoice(c *gin.Context) {
	var req models.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid client id"})
		return
	}
	client, err := h.store.GetUserByID(clientID)
	if err != nil {
		respondError(c, err)
		return
	}

	var projectID uuid.NullUUID
	if req.ProjectID != "" {
		id, err := uuid.Parse(req.ProjectID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
			return
		}
		if _, err := h.store.GetProject(id); err != nil {
			respondError(c, err)
			return
		}
		projectID = uuid.NullUUID{UUID: id, Valid: true}
	}

	var amount int64
	for _, item := range req.LineItems {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		amount += item.AmountCents * qty
	}
	if amount <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invoice total must be positive"})
		return
	}

	invoice, err := h.store.CreateInvoice(clientID, projectID, amount,
		models.InvoiceStatusSent, req.DueDate, req.LineItems, tokens.NewInvoiceToken())
	if err != nil {
		respondError(c, err)
		return
	}

	if req.SyncToStripe && h.stripe.Enabled() {
		customerID, err := h.stripe.EnsureCustomer(client)
		if err != nil {
			respondError(c, err)
			return
		}
		if !client.StripeCustomerID.Valid || client.StripeCustomerID.String != customerID {
			if err := h.store.SetStripeCustomerID(client.ID, customerID); err != nil {
				respondError(c, err)
				return
			}
		}
		synced, err := h.stripe.CreateInvoice(customerID, req.LineItems, &req.DueDate)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := h.store.SetStripeInvoiceID(invoice.ID, synced.ID); err != nil {
			respondError(c, err)
			return
		}
		invoice.StripeInvoiceID.String = synced.ID
		invoice.StripeInvoiceID.Valid = true
	}

	if err := h.mailer.SendInvoice(client.Email, client.Name, invoice.Token, invoice.AmountCents); err != nil {
		logging.L().Error().Err(err).Str("invoice_id", invoice.ID.String()).Msg("send invoice email")
	}

	c.JSON(http.StatusCreated, toInvoiceResponse(invoice, true))
}

func (h *InvoicesHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid invoice id"})
		return
	}
	invoice, err := h.store.GetInvoice(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInvoiceResponse(invoice, true))
}

func (h *InvoicesHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.store.ListInvoices()
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, toInvoiceResponse(&invoices[i], true))
	}
	c.JSON(http.StatusOK, models.InvoiceListResponse{Invoices: out})
}

// UpdateInvoiceStatus moves an invoice through its lifecycle. Marking paid
// stamps paid_at and unlocks any gated gallery on the next request; voiding
// a synced invoice voids the Stripe copy too.
func (h *InvoicesHandler) UpdateInvoiceStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid invoice id"})
		return
	}
	var req models.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	if !models.ValidInvoiceStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid invoice status", Message: req.Status})
		return
	}

	invoice, err := h.store.GetInvoice(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.UpdateInvoiceStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}

	if req.Status == models.InvoiceStatusVoid && invoice.StripeInvoiceID.Valid && h.stripe.Enabled() {
		if err := h.stripe.VoidInvoice(invoice.StripeInvoiceID.String); err != nil {
			logging.L().Error().Err(err).Str("invoice_id", id.String()).Msg("void stripe invoice")
		}
	}

	updated, err := h.store.GetInvoice(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInvoiceResponse(updated, true))
}

// ListMyInvoices is the client's own invoice history.
func (h *InvoicesHandler) ListMyInvoices(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invoices, err := h.store.ListInvoicesByClient(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, toInvoiceResponse(&invoices[i], true))
	}
	c.JSON(http.StatusOK, models.InvoiceListResponse{Invoices: out})
}

// GetInvoiceByToken serves the emailed invoice link without authentication.
// Draft invoices are not visible through it.
func (h *InvoicesHandler) GetInvoiceByToken(c *gin.Context) {
	invoice, err := h.store.GetInvoiceByToken(c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	if invoice.Status == models.InvoiceStatusDraft {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not_found", Message: "resource not found"})
		return
	}
	c.JSON(http.StatusOK, toInvoiceResponse(invoice, false))
}
