// Package billing abstracts the payment provider behind a narrow interface
// so services stay testable without network access.
package billing

import "context"

// Customer is the provider-side customer record.
type Customer struct {
	ID    string
	Name  string
	Email string
}

// ProviderInvoice is the provider-side invoice record.
type ProviderInvoice struct {
	ID               string
	HostedInvoiceURL string
	Status           string
}

// Provider covers the invoice lifecycle: customer lookup/creation, draft
// invoice assembly, finalization and delivery.
type Provider interface {
	// FindCustomerByEmail returns (nil, nil) when no customer matches.
	FindCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	CreateCustomer(ctx context.Context, name, email string) (*Customer, error)
	CreateDraftInvoice(ctx context.Context, customerID string, daysUntilDue int64) (*ProviderInvoice, error)
	AddLineItem(ctx context.Context, customerID, invoiceID string, amountCents int64, currency, description string) error
	FinalizeInvoice(ctx context.Context, invoiceID string) (*ProviderInvoice, error)
	SendInvoice(ctx context.Context, invoiceID string) (*ProviderInvoice, error)
}
