package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"photostudio-backend/internal/models"
)

const invoiceColumns = `id, client_id, project_id, stripe_invoice_id, amount_cents, status,
	due_date, line_items, token, paid_at, created_at`

func scanInvoice(row interface{ Scan(...any) error }) (*models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.ID, &inv.ClientID, &inv.ProjectID, &inv.StripeInvoiceID, &inv.AmountCents, &inv.Status,
		&inv.DueDate, &inv.LineItems, &inv.Token, &inv.PaidAt, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *Client) CreateInvoice(clientID uuid.UUID, projectID uuid.NullUUID, amountCents int64,
	status string, dueDate time.Time, lineItems []models.LineItem, token string) (*models.Invoice, error) {

	itemsJSON, err := json.Marshal(lineItems)
	if err != nil {
		return nil, fmt.Errorf("failed to encode line items: %w", err)
	}

	row := c.db.QueryRow(`
		INSERT INTO invoices (client_id, project_id, amount_cents, status, due_date, line_items, token)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+invoiceColumns,
		clientID, projectID, amountCents, status, dueDate, itemsJSON, token)
	inv, err := scanInvoice(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return inv, nil
}

func (c *Client) GetInvoice(id uuid.UUID) (*models.Invoice, error) {
	row := c.db.QueryRow(`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	return scanInvoice(row)
}

// GetInvoiceByToken serves the unauthenticated invoice link in emails.
func (c *Client) GetInvoiceByToken(token string) (*models.Invoice, error) {
	row := c.db.QueryRow(`SELECT `+invoiceColumns+` FROM invoices WHERE token = $1`, token)
	return scanInvoice(row)
}

func (c *Client) listInvoices(query string, args ...any) ([]models.Invoice, error) {
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

func (c *Client) ListInvoices() ([]models.Invoice, error) {
	return c.listInvoices(`SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC`)
}

func (c *Client) ListInvoicesByClient(clientID uuid.UUID) ([]models.Invoice, error) {
	return c.listInvoices(`
		SELECT `+invoiceColumns+` FROM invoices WHERE client_id = $1 ORDER BY created_at DESC`, clientID)
}

func (c *Client) UpdateInvoiceStatus(id uuid.UUID, status string) error {
	var query string
	if status == models.InvoiceStatusPaid {
		query = `UPDATE invoices SET status = $1, paid_at = NOW() WHERE id = $2`
	} else {
		query = `UPDATE invoices SET status = $1 WHERE id = $2`
	}
	res, err := c.db.Exec(query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	return requireRow(res)
}

func (c *Client) SetStripeInvoiceID(id uuid.UUID, stripeInvoiceID string) error {
	_, err := c.db.Exec(`UPDATE invoices SET stripe_invoice_id = $1 WHERE id = $2`, stripeInvoiceID, id)
	return err
}

// BlockingInvoiceForProject returns one invoice that currently locks the
// project (status neither paid nor void), or sql.ErrNoRows if none exists.
// The oldest blocking invoice wins so the surfaced token is stable.
func (c *Client) BlockingInvoiceForProject(projectID uuid.UUID) (*models.Invoice, error) {
	row := c.db.QueryRow(`
		SELECT `+invoiceColumns+` FROM invoices
		WHERE project_id = $1 AND status NOT IN ('paid', 'void')
		ORDER BY created_at ASC
		LIMIT 1`, projectID)
	return scanInvoice(row)
}
