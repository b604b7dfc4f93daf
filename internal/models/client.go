package models

import "time"

// Client is the billing party, distinct from User. Created lazily the first
// time an invoice is requested for an email; StripeCustomerID is attached when
// the provider customer becomes known (repair-on-read for older rows).
type Client struct {
	BaseModel
	Name             string `gorm:"not null" json:"name"`
	Email            string `gorm:"uniqueIndex;not null" json:"email"`
	StripeCustomerID string `json:"stripeCustomerId,omitempty"`

	Invoices []Invoice `gorm:"foreignKey:ClientID" json:"-"`
}

// Invoice mirrors a provider invoice. StripeInvoiceID is the join key into the
// provider's records. Amount is stored as a decimal string in currency major
// units, exactly as requested.
type Invoice struct {
	BaseModel
	ClientID         string        `gorm:"type:uuid;not null;index" json:"clientId"`
	StripeInvoiceID  string        `gorm:"not null;uniqueIndex" json:"stripeInvoiceId"`
	Amount           string        `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency         string        `gorm:"not null;default:'usd'" json:"currency"`
	Description      string        `gorm:"not null" json:"description"`
	Status           InvoiceStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	HostedInvoiceURL string        `json:"hostedInvoiceUrl,omitempty"`
	DueDate          *time.Time    `json:"dueDate,omitempty"`
}
