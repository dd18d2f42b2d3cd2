package store

import (
	"photostudio-backend/internal/models"
)

// DashboardStats aggregates the admin overview counters in one round trip.
func (c *Client) DashboardStats() (*models.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM projects WHERE status = $1),
			(SELECT COUNT(*) FROM projects WHERE status = $2),
			(SELECT COUNT(*) FROM inquiries WHERE status = $3),
			(SELECT COUNT(*) FROM reviews WHERE NOT is_approved),
			(SELECT COUNT(*) FROM users WHERE role = $4),
			(SELECT COALESCE(SUM(amount_cents), 0) FROM invoices WHERE status = $5)
	`
	var s models.DashboardStats
	err := c.db.QueryRow(query,
		models.ProjectStatusActive,
		models.ProjectStatusDelivered,
		models.InquiryStatusNew,
		models.RoleClient,
		models.InvoiceStatusPaid,
	).Scan(
		&s.ActiveProjects,
		&s.DeliveredProjects,
		&s.PendingInquiries,
		&s.PendingReviews,
		&s.TotalClients,
		&s.TotalRevenueCents,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
