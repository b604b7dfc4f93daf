package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/repositories"
	"github.com/gadsdencode/pixprofolio/internal/services/dto"
	"github.com/gadsdencode/pixprofolio/pkg/apperrors"
)

// AuthService owns account creation and credential verification for both
// local-password and Google identities.
type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)
	AuthenticateLocal(db *gorm.DB, req *dto.LoginRequest) (*models.User, error)
	AuthenticateGoogle(db *gorm.DB, profile *dto.GoogleProfile) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Register creates a local account. Self-registration always yields the
// client role; the owner account is seeded at startup, never registered.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         models.UserRoleClient,
		Provider:     models.AuthProviderLocal,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.PersistenceError(err)
	}

	return user, nil
}

// AuthenticateLocal verifies an email/password pair. A missing user and a
// wrong password produce the same error so the response does not leak which
// emails are registered.
func (s *AuthServiceImpl) AuthenticateLocal(db *gorm.DB, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.PersistenceError(err)
	}

	if user.PasswordHash == "" {
		return nil, apperrors.ErrOAuthAccount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// AuthenticateGoogle signs in a Google identity. An existing account with
// the same email gets the identity linked onto it; role, email and any local
// password are preserved. Otherwise a new client account is created.
func (s *AuthServiceImpl) AuthenticateGoogle(db *gorm.DB, profile *dto.GoogleProfile) (*models.User, error) {
	if profile.Email == "" {
		return nil, apperrors.ErrMissingProviderEmail
	}

	user, err := s.userRepo.FindByEmail(db, profile.Email)
	if err == nil {
		if err := s.userRepo.UpdateProviderIdentity(db, user.ID, models.AuthProviderGoogle, profile.ID, profile.Picture); err != nil {
			return nil, apperrors.PersistenceError(err)
		}
		return s.userRepo.FindByID(db, user.ID)
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.PersistenceError(err)
	}

	user = &models.User{
		Email:          profile.Email,
		Name:           profile.Name,
		Role:           models.UserRoleClient,
		Provider:       models.AuthProviderGoogle,
		ProviderID:     profile.ID,
		ProfilePicture: profile.Picture,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	return user, nil
}
