package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/models"
)

var ErrPortfolioItemNotFound = errors.New("portfolio item not found")

type PortfolioRepository interface {
	Create(db *gorm.DB, item *models.PortfolioItem) error
	FindByID(db *gorm.DB, id string) (*models.PortfolioItem, error)
	FindAll(db *gorm.DB) ([]models.PortfolioItem, error)
	FindByCategory(db *gorm.DB, category string) ([]models.PortfolioItem, error)
	FindFeatured(db *gorm.DB) ([]models.PortfolioItem, error)
	Update(db *gorm.DB, item *models.PortfolioItem) error
	Delete(db *gorm.DB, id string) error
}

type PortfolioRepositoryImpl struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &PortfolioRepositoryImpl{}
}

func (r *PortfolioRepositoryImpl) Create(db *gorm.DB, item *models.PortfolioItem) error {
	// Append to the end of the gallery when no explicit position was given.
	if item.DisplayOrder == 0 {
		var maxOrder int
		db.Model(&models.PortfolioItem{}).Select("COALESCE(MAX(display_order), 0)").Scan(&maxOrder)
		item.DisplayOrder = maxOrder + 1
	}
	return db.Create(item).Error
}

func (r *PortfolioRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepositoryImpl) FindAll(db *gorm.DB) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Order("display_order ASC").Find(&items).Error
	return items, err
}

func (r *PortfolioRepositoryImpl) FindByCategory(db *gorm.DB, category string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Where("category = ?", category).Order("display_order ASC").Find(&items).Error
	return items, err
}

func (r *PortfolioRepositoryImpl) FindFeatured(db *gorm.DB) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Where("featured = ?", 1).Order("display_order ASC").Find(&items).Error
	return items, err
}

func (r *PortfolioRepositoryImpl) Update(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Save(item).Error
}

func (r *PortfolioRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.PortfolioItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}
