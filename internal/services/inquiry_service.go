package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/email"
	"github.com/gadsdencode/pixprofolio/internal/logger"
	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/repositories"
	"github.com/gadsdencode/pixprofolio/internal/services/dto"
	"github.com/gadsdencode/pixprofolio/pkg/apperrors"
)

// InquiryService records contact form submissions and exposes them to the
// owner and to the submitting client.
type InquiryService interface {
	Create(db *gorm.DB, req *dto.CreateInquiryRequest) (*models.ContactInquiry, error)
	ListAll(db *gorm.DB) ([]models.ContactInquiry, error)
	ListByEmail(db *gorm.DB, email string) ([]models.ContactInquiry, error)
	UpdateStatus(db *gorm.DB, id, status string) (*models.ContactInquiry, error)
}

type InquiryServiceImpl struct {
	inquiryRepo repositories.InquiryRepository
	sender      email.Sender
	ownerEmail  string
}

func NewInquiryService(inquiryRepo repositories.InquiryRepository, sender email.Sender, ownerEmail string) InquiryService {
	return &InquiryServiceImpl{
		inquiryRepo: inquiryRepo,
		sender:      sender,
		ownerEmail:  ownerEmail,
	}
}

// Create persists the inquiry, then notifies the owner best-effort: a mail
// failure is logged but never fails the submission.
func (s *InquiryServiceImpl) Create(db *gorm.DB, req *dto.CreateInquiryRequest) (*models.ContactInquiry, error) {
	inquiry := &models.ContactInquiry{
		FullName:    req.FullName,
		Email:       req.Email,
		ProjectType: req.ProjectType,
		DesiredDate: req.DesiredDate,
		Message:     req.Message,
		Status:      models.InquiryStatusNew,
	}

	if err := s.inquiryRepo.Create(db, inquiry); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	s.notifyOwner(inquiry)

	return inquiry, nil
}

func (s *InquiryServiceImpl) notifyOwner(inquiry *models.ContactInquiry) {
	if s.sender == nil || s.ownerEmail == "" {
		return
	}

	log := logger.GetLogger()
	body, err := email.RenderInquiryNotification(email.InquiryNotificationData{
		FullName:    inquiry.FullName,
		Email:       inquiry.Email,
		ProjectType: inquiry.ProjectType,
		DesiredDate: inquiry.DesiredDate,
		Message:     inquiry.Message,
	})
	if err != nil {
		log.Error("inquiry notification render failed", "inquiry_id", inquiry.ID, "error", err)
		return
	}

	if err := s.sender.Send(s.ownerEmail, "New contact inquiry from "+inquiry.FullName, body); err != nil {
		log.Error("inquiry notification send failed", "inquiry_id", inquiry.ID, "error", err)
	}
}

func (s *InquiryServiceImpl) ListAll(db *gorm.DB) ([]models.ContactInquiry, error) {
	inquiries, err := s.inquiryRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return inquiries, nil
}

// ListByEmail correlates inquiries with the session user by normalized email.
func (s *InquiryServiceImpl) ListByEmail(db *gorm.DB, userEmail string) ([]models.ContactInquiry, error) {
	inquiries, err := s.inquiryRepo.FindByEmail(db, NormalizeEmail(userEmail))
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return inquiries, nil
}

func (s *InquiryServiceImpl) UpdateStatus(db *gorm.DB, id, status string) (*models.ContactInquiry, error) {
	next := models.InquiryStatus(status)
	if !next.IsValid() {
		return nil, apperrors.ErrInvalidStatus("inquiry", "invalid inquiry status: "+status)
	}

	if err := s.inquiryRepo.UpdateStatus(db, id, next); err != nil {
		if errors.Is(err, repositories.ErrInquiryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}

	return s.inquiryRepo.FindByID(db, id)
}
