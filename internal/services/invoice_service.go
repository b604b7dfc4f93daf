package services

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/billing"
	"github.com/gadsdencode/pixprofolio/internal/logger"
	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/repositories"
	"github.com/gadsdencode/pixprofolio/internal/services/dto"
	"github.com/gadsdencode/pixprofolio/pkg/apperrors"
)

const (
	invoiceCurrency     = "usd"
	invoiceDaysUntilDue = 30
)

// InvoiceService orchestrates the billing-provider invoice lifecycle and
// keeps local invoice rows alongside it.
type InvoiceService interface {
	CreateAndSend(ctx context.Context, db *gorm.DB, req *dto.CreateInvoiceRequest) (*models.Invoice, error)
	ListAll(db *gorm.DB) ([]models.Invoice, error)
	ListForEmail(db *gorm.DB, email string) ([]models.Invoice, error)
	UpdateStatus(db *gorm.DB, id, status string) (*models.Invoice, error)
}

type InvoiceServiceImpl struct {
	invoiceRepo repositories.InvoiceRepository
	clientRepo  repositories.ClientRepository
	provider    billing.Provider
}

func NewInvoiceService(invoiceRepo repositories.InvoiceRepository, clientRepo repositories.ClientRepository, provider billing.Provider) InvoiceService {
	return &InvoiceServiceImpl{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		provider:    provider,
	}
}

// CreateAndSend runs the invoice pipeline in strict order: resolve the
// billing customer, repair the local client record, then draft, itemize,
// finalize and send the provider invoice before persisting the local row.
// There is no compensation on partial failure; a failed step leaves earlier
// provider objects in place and is surfaced to the caller.
func (s *InvoiceServiceImpl) CreateAndSend(ctx context.Context, db *gorm.DB, req *dto.CreateInvoiceRequest) (*models.Invoice, error) {
	log := logger.GetLogger()

	localClient, err := s.clientRepo.FindByEmail(db, req.ClientEmail)
	if err != nil && !errors.Is(err, repositories.ErrClientNotFound) {
		return nil, apperrors.PersistenceError(err)
	}

	customer, err := s.provider.FindCustomerByEmail(ctx, req.ClientEmail)
	if err != nil {
		return nil, apperrors.ErrInvoiceCreation(err)
	}
	if customer == nil {
		customer, err = s.provider.CreateCustomer(ctx, req.ClientName, req.ClientEmail)
		if err != nil {
			return nil, apperrors.ErrInvoiceCreation(err)
		}
		logger.CtxInfo(ctx, "billing customer created", "customer_id", customer.ID)
	} else {
		logger.CtxInfo(ctx, "billing customer reused", "customer_id", customer.ID)
	}

	if localClient == nil {
		localClient = &models.Client{
			Name:             req.ClientName,
			Email:            req.ClientEmail,
			StripeCustomerID: customer.ID,
		}
		if err := s.clientRepo.Create(db, localClient); err != nil {
			return nil, apperrors.PersistenceError(err)
		}
	} else if localClient.StripeCustomerID == "" {
		// Attach the provider reference to a client row created before one
		// existed. A differing stored id is left alone; the invoice targets
		// the looked-up customer regardless.
		if err := s.clientRepo.UpdateStripeCustomerID(db, localClient.ID, customer.ID); err != nil {
			return nil, apperrors.PersistenceError(err)
		}
		localClient.StripeCustomerID = customer.ID
	}

	draft, err := s.provider.CreateDraftInvoice(ctx, customer.ID, invoiceDaysUntilDue)
	if err != nil {
		return nil, apperrors.ErrInvoiceCreation(err)
	}
	logger.CtxInfo(ctx, "draft invoice created", "invoice_id", draft.ID)

	amountCents := int64(math.Round(req.Amount * 100))
	if err := s.provider.AddLineItem(ctx, customer.ID, draft.ID, amountCents, invoiceCurrency, req.ServiceDescription); err != nil {
		return nil, apperrors.ErrInvoiceCreation(err)
	}

	finalized, err := s.provider.FinalizeInvoice(ctx, draft.ID)
	if err != nil {
		return nil, apperrors.ErrInvoiceCreation(err)
	}

	if _, err := s.provider.SendInvoice(ctx, finalized.ID); err != nil {
		return nil, apperrors.ErrInvoiceCreation(err)
	}
	logger.CtxInfo(ctx, "invoice sent", "invoice_id", finalized.ID)

	dueDate := time.Now().AddDate(0, 0, invoiceDaysUntilDue)
	invoice := &models.Invoice{
		ClientID:         localClient.ID,
		StripeInvoiceID:  finalized.ID,
		Amount:           strconv.FormatFloat(req.Amount, 'f', -1, 64),
		Currency:         invoiceCurrency,
		Description:      req.ServiceDescription,
		Status:           models.InvoiceStatusSent,
		HostedInvoiceURL: finalized.HostedInvoiceURL,
		DueDate:          &dueDate,
	}
	if err := s.invoiceRepo.Create(db, invoice); err != nil {
		// Provider already sent the invoice; the local row is lost until a
		// reconciliation pass is built.
		log.Error("sent invoice could not be persisted", "stripe_invoice_id", finalized.ID, "error", err)
		return nil, apperrors.PersistenceError(err)
	}

	return invoice, nil
}

func (s *InvoiceServiceImpl) ListAll(db *gorm.DB) ([]models.Invoice, error) {
	invoices, err := s.invoiceRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return invoices, nil
}

// ListForEmail returns the invoices belonging to the client record that
// matches the normalized email, or an empty list when none exists.
func (s *InvoiceServiceImpl) ListForEmail(db *gorm.DB, email string) ([]models.Invoice, error) {
	invoices, err := s.invoiceRepo.FindByClientEmail(db, NormalizeEmail(email))
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return invoices, nil
}

func (s *InvoiceServiceImpl) UpdateStatus(db *gorm.DB, id, status string) (*models.Invoice, error) {
	next := models.InvoiceStatus(status)
	if !next.IsValid() {
		return nil, apperrors.ErrInvalidStatus("invoice", "invalid invoice status: "+status)
	}

	if err := s.invoiceRepo.UpdateStatus(db, id, next); err != nil {
		if errors.Is(err, repositories.ErrInvoiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	return s.invoiceRepo.FindByID(db, id)
}
