// Package payments mirrors studio invoices into Stripe so clients get a
// hosted payment page. Sync is optional: with no API key configured,
// invoices stay local and get settled manually.
package payments

import (
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/customer"
	"github.com/stripe/stripe-go/v75/invoice"
	"github.com/stripe/stripe-go/v75/invoiceitem"

	"photostudio-backend/internal/models"
)

type Client struct {
	enabled bool
}

func New(secretKey string) *Client {
	stripe.Key = secretKey
	return &Client{enabled: secretKey != ""}
}

// Enabled reports whether Stripe sync is configured.
func (c *Client) Enabled() bool {
	return c.enabled
}

// EnsureCustomer returns the user's Stripe customer ID, creating the
// customer on first use.
func (c *Client) EnsureCustomer(user *models.User) (string, error) {
	if user.StripeCustomerID.Valid && user.StripeCustomerID.String != "" {
		return user.StripeCustomerID.String, nil
	}
	cus, err := customer.New(&stripe.CustomerParams{
		Email: stripe.String(user.Email),
		Name:  stripe.String(user.Name),
		Metadata: map[string]string{
			"user_id": user.ID.String(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("create stripe customer: %w", err)
	}
	return cus.ID, nil
}

// SyncedInvoice is what came back from Stripe after finalization.
type SyncedInvoice struct {
	ID        string
	HostedURL string
}

// CreateInvoice pushes the line items to Stripe, finalizes the invoice and
// emails it through Stripe's own delivery.
func (c *Client) CreateInvoice(customerID string, items []models.LineItem, dueDate *time.Time) (*SyncedInvoice, error) {
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		_, err := invoiceitem.New(&stripe.InvoiceItemParams{
			Customer:    stripe.String(customerID),
			UnitAmount:  stripe.Int64(item.AmountCents),
			Quantity:    stripe.Int64(int64(qty)),
			Currency:    stripe.String(string(stripe.CurrencyUSD)),
			Description: stripe.String(item.Description),
		})
		if err != nil {
			return nil, fmt.Errorf("create stripe invoice item: %w", err)
		}
	}

	params := &stripe.InvoiceParams{
		Customer:                    stripe.String(customerID),
		CollectionMethod:            stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		PendingInvoiceItemsBehavior: stripe.String("include"),
	}
	if dueDate != nil {
		params.DueDate = stripe.Int64(dueDate.Unix())
	} else {
		params.DaysUntilDue = stripe.Int64(30)
	}

	inv, err := invoice.New(params)
	if err != nil {
		return nil, fmt.Errorf("create stripe invoice: %w", err)
	}
	finalized, err := invoice.FinalizeInvoice(inv.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("finalize stripe invoice: %w", err)
	}
	if _, err := invoice.SendInvoice(finalized.ID, nil); err != nil {
		return nil, fmt.Errorf("send stripe invoice: %w", err)
	}
	return &SyncedInvoice{ID: finalized.ID, HostedURL: finalized.HostedInvoiceURL}, nil
}

// InvoicePaid checks the live Stripe status for a synced invoice.
func (c *Client) InvoicePaid(stripeInvoiceID string) (bool, error) {
	inv, err := invoice.Get(stripeInvoiceID, nil)
	if err != nil {
		return false, fmt.Errorf("get stripe invoice: %w", err)
	}
	return inv.Status == stripe.InvoiceStatusPaid, nil
}

// VoidInvoice voids the Stripe copy when the local invoice is voided.
func (c *Client) VoidInvoice(stripeInvoiceID string) error {
	if _, err := invoice.VoidInvoice(stripeInvoiceID, nil); err != nil {
		return fmt.Errorf("void stripe invoice: %w", err)
	}
	return nil
}
