package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/models"
)

var ErrInquiryNotFound = errors.New("contact inquiry not found")

type InquiryRepository interface {
	Create(db *gorm.DB, inquiry *models.ContactInquiry) error
	FindByID(db *gorm.DB, id string) (*models.ContactInquiry, error)
	FindAll(db *gorm.DB) ([]models.ContactInquiry, error)
	FindByEmail(db *gorm.DB, email string) ([]models.ContactInquiry, error)
	UpdateStatus(db *gorm.DB, id string, status models.InquiryStatus) error
}

type InquiryRepositoryImpl struct{}

func NewInquiryRepository() InquiryRepository {
	return &InquiryRepositoryImpl{}
}

func (r *InquiryRepositoryImpl) Create(db *gorm.DB, inquiry *models.ContactInquiry) error {
	return db.Create(inquiry).Error
}

func (r *InquiryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ContactInquiry, error) {
	var inquiry models.ContactInquiry
	err := db.First(&inquiry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *InquiryRepositoryImpl) FindAll(db *gorm.DB) ([]models.ContactInquiry, error) {
	var inquiries []models.ContactInquiry
	err := db.Order("created_at DESC").Find(&inquiries).Error
	return inquiries, err
}

// FindByEmail correlates inquiries with the session user by normalized email.
func (r *InquiryRepositoryImpl) FindByEmail(db *gorm.DB, email string) ([]models.ContactInquiry, error) {
	var inquiries []models.ContactInquiry
	err := db.Where("LOWER(email) = LOWER(?)", email).Order("created_at DESC").Find(&inquiries).Error
	return inquiries, err
}

func (r *InquiryRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.InquiryStatus) error {
	result := db.Model(&models.ContactInquiry{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInquiryNotFound
	}
	return nil
}
