package models

import (
	"encoding/json"
	"time"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	// InvoiceToken is set on payment_required errors so the client can be
	// pointed at the blocking invoice.
	InvoiceToken string `json:"invoice_token,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type ProjectResponse struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	ClientID           string     `json:"client_id"`
	Status             string     `json:"status"`
	CoverImageKey      string     `json:"cover_image_key,omitempty"`
	Categories         []string   `json:"categories"`
	ShareLinkToken     string     `json:"share_link_token,omitempty"`
	ShareLinkExpiresAt *time.Time `json:"share_link_expires_at,omitempty"`
	ProjectExpiresAt   *time.Time `json:"project_expires_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

type DeliverProjectResponse struct {
	ShareLinkToken string `json:"share_link_token"`
	InvoiceToken   string `json:"invoice_token,omitempty"`
	Message        string `json:"message"`
}

// MediaResponse carries presigned URLs for whichever variants the requester
// may see; absent variants are omitted.
type MediaResponse struct {
	ID                  string    `json:"id"`
	ProjectID           string    `json:"project_id"`
	OriginalURL         string    `json:"original_url,omitempty"`
	CompressedURL       string    `json:"compressed_url,omitempty"`
	ThumbnailURL        string    `json:"thumbnail_url,omitempty"`
	WatermarkedURL      string    `json:"watermarked_url,omitempty"`
	Filename            string    `json:"filename"`
	MimeType            string    `json:"mime_type"`
	Width               int       `json:"width"`
	Height              int       `json:"height"`
	SizeBytes           int64     `json:"size_bytes"`
	CompressedSizeBytes int64     `json:"compressed_size_bytes"`
	SortOrder           int       `json:"sort_order"`
	IsSelected          bool      `json:"is_selected"`
	UploadedAt          time.Time `json:"uploaded_at"`
}

type MediaListResponse struct {
	Media        []MediaResponse `json:"media"`
	Locked       bool            `json:"locked"`
	InvoiceToken string          `json:"invoice_token,omitempty"`
}

type UploadErrorInfo struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
	Stage    string `json:"stage"`
}

type UploadMediaResponse struct {
	MediaIDs []string          `json:"media_ids"`
	Errors   []UploadErrorInfo `json:"errors,omitempty"`
	Message  string            `json:"message"`
}

type GalleryResponse struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Status             string     `json:"status"`
	Categories         []string   `json:"categories"`
	ShareLinkExpiresAt *time.Time `json:"share_link_expires_at,omitempty"`
}

type InvoiceResponse struct {
	ID              string     `json:"id"`
	ClientID        string     `json:"client_id"`
	ProjectID       string     `json:"project_id,omitempty"`
	StripeInvoiceID string     `json:"stripe_invoice_id,omitempty"`
	AmountCents     int64      `json:"amount_cents"`
	Status          string     `json:"status"`
	DueDate         time.Time  `json:"due_date"`
	LineItems       []LineItem `json:"line_items"`
	Token           string     `json:"token,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

type PortfolioItemResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category"`
	ImageURL     string `json:"image_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	SortOrder    int    `json:"sort_order"`
	IsVisible    bool   `json:"is_visible"`
}

type PortfolioListResponse struct {
	Items []PortfolioItemResponse `json:"items"`
	Total int                     `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
}

type PricingResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PriceCents   int64    `json:"price_cents"`
	PriceDisplay string   `json:"price_display"`
	Features     []string `json:"features"`
	IsCustom     bool     `json:"is_custom"`
	SortOrder    int      `json:"sort_order"`
	IsVisible    bool     `json:"is_visible"`
}

type PricingListResponse struct {
	Packages []PricingResponse `json:"packages"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Body       string    `json:"body"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

type InquiryResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	PackageID string     `json:"package_id,omitempty"`
	Message   string     `json:"message"`
	EventDate *time.Time `json:"event_date,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

type InquiryListResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
}

type SettingResponse struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// DashboardStats is the admin landing-page summary. Revenue counts paid
// invoices only.
type DashboardStats struct {
	ActiveProjects    int   `json:"active_projects"`
	DeliveredProjects int   `json:"delivered_projects"`
	PendingInquiries  int   `json:"pending_inquiries"`
	PendingReviews    int   `json:"pending_reviews"`
	TotalClients      int   `json:"total_clients"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
}
