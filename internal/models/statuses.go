package models

// UserRole is a closed classification of principal. There is no hierarchy:
// owner is not implicitly permitted on client-gated resources or vice versa.
type UserRole string

const (
	UserRoleOwner  UserRole = "owner"
	UserRoleClient UserRole = "client"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleClient:
		return true
	}
	return false
}

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGoogle AuthProvider = "google"
)

// InvoiceStatus mirrors the billing provider's lifecycle. The local status is
// set once at creation and only changes through an explicit owner update;
// there is no webhook reconciliation.
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
	InvoiceStatusVoid  InvoiceStatus = "void"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}
	return false
}

// InquiryStatus tracks how far a contact inquiry has progressed.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusConverted InquiryStatus = "converted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

func (s InquiryStatus) IsValid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusContacted, InquiryStatusConverted, InquiryStatusClosed:
		return true
	}
	return false
}
