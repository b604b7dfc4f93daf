package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/models"
)

var ErrClientNotFound = errors.New("client not found")

type ClientRepository interface {
	Create(db *gorm.DB, client *models.Client) error
	FindByID(db *gorm.DB, id string) (*models.Client, error)
	FindByEmail(db *gorm.DB, email string) (*models.Client, error)
	UpdateStripeCustomerID(db *gorm.DB, id, stripeCustomerID string) error
}

type ClientRepositoryImpl struct{}

func NewClientRepository() ClientRepository {
	return &ClientRepositoryImpl{}
}

func (r *ClientRepositoryImpl) Create(db *gorm.DB, client *models.Client) error {
	return db.Create(client).Error
}

func (r *ClientRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Client, error) {
	var client models.Client
	err := db.First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindByEmail compares case-insensitively: clients are correlated with
// session users by normalized email, not by foreign key.
func (r *ClientRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Client, error) {
	var client models.Client
	err := db.First(&client, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepositoryImpl) UpdateStripeCustomerID(db *gorm.DB, id, stripeCustomerID string) error {
	result := db.Model(&models.Client{}).Where("id = ?", id).Update("stripe_customer_id", stripeCustomerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
