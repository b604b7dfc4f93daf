package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/models"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoiceRepository interface {
	Create(db *gorm.DB, invoice *models.Invoice) error
	FindByID(db *gorm.DB, id string) (*models.Invoice, error)
	FindAll(db *gorm.DB) ([]models.Invoice, error)
	FindByClientID(db *gorm.DB, clientID string) ([]models.Invoice, error)
	FindByClientEmail(db *gorm.DB, email string) ([]models.Invoice, error)
	UpdateStatus(db *gorm.DB, id string, status models.InvoiceStatus) error
}

type InvoiceRepositoryImpl struct{}

func NewInvoiceRepository() InvoiceRepository {
	return &InvoiceRepositoryImpl{}
}

func (r *InvoiceRepositoryImpl) Create(db *gorm.DB, invoice *models.Invoice) error {
	return db.Create(invoice).Error
}

func (r *InvoiceRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := db.First(&invoice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepositoryImpl) FindAll(db *gorm.DB) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := db.Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

func (r *InvoiceRepositoryImpl) FindByClientID(db *gorm.DB, clientID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := db.Where("client_id = ?", clientID).Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

// FindByClientEmail resolves the client by normalized email first; no client
// means an empty result, not an error.
func (r *InvoiceRepositoryImpl) FindByClientEmail(db *gorm.DB, email string) ([]models.Invoice, error) {
	var client models.Client
	err := db.First(&client, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Invoice{}, nil
		}
		return nil, err
	}
	return r.FindByClientID(db, client.ID)
}

func (r *InvoiceRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.InvoiceStatus) error {
	result := db.Model(&models.Invoice{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}
