package billing

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeProvider implements Provider on the Stripe API.
type StripeProvider struct {
	sc *client.API
}

func NewStripeProvider(secretKey string) *StripeProvider {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeProvider{sc: sc}
}

func (p *StripeProvider) FindCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	params := &stripe.CustomerListParams{
		ListParams: stripe.ListParams{
			Context: ctx,
			Limit:   stripe.Int64(1),
		},
		Email: stripe.String(email),
	}
	iter := p.sc.Customers.List(params)
	if iter.Next() {
		c := iter.Customer()
		return &Customer{ID: c.ID, Name: c.Name, Email: c.Email}, nil
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return nil, nil
}

func (p *StripeProvider) CreateCustomer(ctx context.Context, name, email string) (*Customer, error) {
	params := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Name:   stripe.String(name),
		Email:  stripe.String(email),
	}
	c, err := p.sc.Customers.New(params)
	if err != nil {
		return nil, err
	}
	return &Customer{ID: c.ID, Name: c.Name, Email: c.Email}, nil
}

func (p *StripeProvider) CreateDraftInvoice(ctx context.Context, customerID string, daysUntilDue int64) (*ProviderInvoice, error) {
	params := &stripe.InvoiceParams{
		Params:           stripe.Params{Context: ctx},
		Customer:         stripe.String(customerID),
		CollectionMethod: stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		DaysUntilDue:     stripe.Int64(daysUntilDue),
	}
	inv, err := p.sc.Invoices.New(params)
	if err != nil {
		return nil, err
	}
	return toProviderInvoice(inv), nil
}

func (p *StripeProvider) AddLineItem(ctx context.Context, customerID, invoiceID string, amountCents int64, currency, description string) error {
	params := &stripe.InvoiceItemParams{
		Params:      stripe.Params{Context: ctx},
		Customer:    stripe.String(customerID),
		Invoice:     stripe.String(invoiceID),
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	}
	_, err := p.sc.InvoiceItems.New(params)
	return err
}

func (p *StripeProvider) FinalizeInvoice(ctx context.Context, invoiceID string) (*ProviderInvoice, error) {
	params := &stripe.InvoiceFinalizeInvoiceParams{
		Params: stripe.Params{Context: ctx},
	}
	inv, err := p.sc.Invoices.FinalizeInvoice(invoiceID, params)
	if err != nil {
		return nil, err
	}
	return toProviderInvoice(inv), nil
}

func (p *StripeProvider) SendInvoice(ctx context.Context, invoiceID string) (*ProviderInvoice, error) {
	params := &stripe.InvoiceSendInvoiceParams{
		Params: stripe.Params{Context: ctx},
	}
	inv, err := p.sc.Invoices.SendInvoice(invoiceID, params)
	if err != nil {
		return nil, err
	}
	return toProviderInvoice(inv), nil
}

func toProviderInvoice(inv *stripe.Invoice) *ProviderInvoice {
	return &ProviderInvoice{
		ID:               inv.ID,
		HostedInvoiceURL: inv.HostedInvoiceURL,
		Status:           string(inv.Status),
	}
}
