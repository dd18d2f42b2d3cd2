package models

import (
	"encoding/json"
	"time"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SetupAccountRequest struct {
	Token    string `json:"token" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required,min=8"`
}

type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	ClientEmail string   `json:"client_email" binding:"required,email"`
	ClientName  string   `json:"client_name"`
	Categories  []string `json:"categories"`
	// InquiryID marks the originating inquiry as booked when set.
	InquiryID string `json:"inquiry_id,omitempty"`
}

type UpdateProjectRequest struct {
	Title            *string    `json:"title,omitempty"`
	Description      *string    `json:"description,omitempty"`
	Categories       *[]string  `json:"categories,omitempty"`
	CoverImageKey    *string    `json:"cover_image_key,omitempty"`
	ProjectExpiresAt *time.Time `json:"project_expires_at,omitempty"`
}

func (r *UpdateProjectRequest) Patch() ProjectPatch {
	return ProjectPatch{
		Title:            r.Title,
		Description:      r.Description,
		Categories:       r.Categories,
		CoverImageKey:    r.CoverImageKey,
		ProjectExpiresAt: r.ProjectExpiresAt,
	}
}

func (r *UpdateProjectRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Categories == nil &&
		r.CoverImageKey == nil && r.ProjectExpiresAt == nil
}

type DeliverProjectRequest struct {
	ShareLinkExpiresAt *time.Time `json:"share_link_expires_at,omitempty"`
	ProjectExpiresAt   *time.Time `json:"project_expires_at,omitempty"`
	CreateInvoice      bool       `json:"create_invoice"`
	InvoiceLineItems   []LineItem `json:"invoice_line_items,omitempty"`
	InvoiceDueDate     *time.Time `json:"invoice_due_date,omitempty"`
}

type ReorderMediaRequest struct {
	MediaIDs []string `json:"media_ids" binding:"required"`
}

type SelectMediaRequest struct {
	MediaIDs []string `json:"media_ids" binding:"required"`
	Selected bool     `json:"selected"`
}

type CreateInvoiceRequest struct {
	ClientID  string     `json:"client_id" binding:"required"`
	ProjectID string     `json:"project_id,omitempty"`
	LineItems []LineItem `json:"line_items" binding:"required,min=1"`
	DueDate   time.Time  `json:"due_date" binding:"required"`
	// SyncToStripe also creates the invoice object at the payment provider.
	SyncToStripe bool `json:"sync_to_stripe"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePortfolioItemRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsVisible   *bool   `json:"is_visible,omitempty"`
}

func (r *UpdatePortfolioItemRequest) Patch() PortfolioPatch {
	return PortfolioPatch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		IsVisible:   r.IsVisible,
	}
}

func (r *UpdatePortfolioItemRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Category == nil && r.IsVisible == nil
}

type ReorderPortfolioRequest struct {
	ItemIDs []string `json:"item_ids" binding:"required"`
}

type CreatePricingRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	PriceCents   int64    `json:"price_cents"`
	PriceDisplay string   `json:"price_display"`
	Features     []string `json:"features"`
	IsCustom     bool     `json:"is_custom"`
}

type UpdatePricingRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	PriceCents   *int64   `json:"price_cents,omitempty"`
	PriceDisplay *string  `json:"price_display,omitempty"`
	Features     []string `json:"features,omitempty"`
	IsCustom     *bool    `json:"is_custom,omitempty"`
	IsVisible    *bool    `json:"is_visible,omitempty"`
}

func (r UpdatePricingRequest) Patch() PricingPatch {
	return PricingPatch{
		Name:         r.Name,
		Description:  r.Description,
		PriceCents:   r.PriceCents,
		PriceDisplay: r.PriceDisplay,
		Features:     r.Features,
		IsCustom:     r.IsCustom,
		IsVisible:    r.IsVisible,
	}
}

func (r UpdatePricingRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.PriceCents == nil &&
		r.PriceDisplay == nil && r.Features == nil && r.IsCustom == nil && r.IsVisible == nil
}

type ReorderPricingRequest struct {
	PackageIDs []string `json:"package_ids" binding:"required"`
}

type CreateInquiryRequest struct {
	Name      string     `json:"name" binding:"required"`
	Email     string     `json:"email" binding:"required,email"`
	Phone     string     `json:"phone,omitempty"`
	PackageID string     `json:"package_id,omitempty"`
	Message   string     `json:"message" binding:"required"`
	EventDate *time.Time `json:"event_date,omitempty"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateReviewRequest struct {
	AuthorName string `json:"author_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Body       string `json:"body" binding:"required"`
	ProjectID  string `json:"project_id,omitempty"`
}

type UpsertSettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}
