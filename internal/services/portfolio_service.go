package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/repositories"
	"github.com/gadsdencode/pixprofolio/internal/services/dto"
	"github.com/gadsdencode/pixprofolio/pkg/apperrors"
)

// PortfolioService serves the public gallery and the owner's CRUD on it.
type PortfolioService interface {
	List(db *gorm.DB, category string) ([]models.PortfolioItem, error)
	Featured(db *gorm.DB) ([]models.PortfolioItem, error)
	Create(db *gorm.DB, req *dto.CreatePortfolioItemRequest) (*models.PortfolioItem, error)
	Update(db *gorm.DB, id string, req *dto.UpdatePortfolioItemRequest) (*models.PortfolioItem, error)
	Delete(db *gorm.DB, id string) error
}

type PortfolioServiceImpl struct {
	portfolioRepo repositories.PortfolioRepository
}

func NewPortfolioService(portfolioRepo repositories.PortfolioRepository) PortfolioService {
	return &PortfolioServiceImpl{portfolioRepo: portfolioRepo}
}

// List returns gallery items in display order. An empty category or the
// literal "All" means no filter.
func (s *PortfolioServiceImpl) List(db *gorm.DB, category string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	var err error
	if category == "" || category == "All" {
		items, err = s.portfolioRepo.FindAll(db)
	} else {
		items, err = s.portfolioRepo.FindByCategory(db, category)
	}
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return items, nil
}

func (s *PortfolioServiceImpl) Featured(db *gorm.DB) ([]models.PortfolioItem, error) {
	items, err := s.portfolioRepo.FindFeatured(db)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return items, nil
}

func (s *PortfolioServiceImpl) Create(db *gorm.DB, req *dto.CreatePortfolioItemRequest) (*models.PortfolioItem, error) {
	item := &models.PortfolioItem{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	}

	if err := s.portfolioRepo.Create(db, item); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return item, nil
}

func (s *PortfolioServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdatePortfolioItemRequest) (*models.PortfolioItem, error) {
	item, err := s.portfolioRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	}

	if err := s.portfolioRepo.Update(db, item); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return item, nil
}

func (s *PortfolioServiceImpl) Delete(db *gorm.DB, id string) error {
	if err := s.portfolioRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.PersistenceError(err)
	}
	return nil
}
