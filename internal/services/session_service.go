package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/repositories"
	"github.com/gadsdencode/pixprofolio/pkg/apperrors"
)

// SessionService manages the server-side session records behind the opaque
// cookie token.
type SessionService interface {
	Establish(db *gorm.DB, userID string) (*models.Session, error)
	Resolve(db *gorm.DB, token string) (*models.User, error)
	Terminate(db *gorm.DB, token string) error
	PurgeExpired(db *gorm.DB) (int64, error)
}

type SessionServiceImpl struct {
	sessionRepo repositories.SessionRepository
	userRepo    repositories.UserRepository
	ttl         time.Duration
}

func NewSessionService(sessionRepo repositories.SessionRepository, userRepo repositories.UserRepository, ttl time.Duration) SessionService {
	return &SessionServiceImpl{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		ttl:         ttl,
	}
}

// Establish persists a new session before the token is handed to the client,
// so a cookie can never reference a session that does not exist.
func (s *SessionServiceImpl) Establish(db *gorm.DB, userID string) (*models.Session, error) {
	session := &models.Session{
		UserID:    userID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.sessionRepo.Create(db, session); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return session, nil
}

// Resolve maps a token to its user. The user row is re-fetched on every call
// so role or profile changes take effect on the next request.
func (s *SessionServiceImpl) Resolve(db *gorm.DB, token string) (*models.User, error) {
	session, err := s.sessionRepo.FindByToken(db, token)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrNotAuthenticated
		}
		return nil, apperrors.PersistenceError(err)
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessionRepo.DeleteByToken(db, token)
		return nil, apperrors.ErrNotAuthenticated
	}

	user, err := s.userRepo.FindByID(db, session.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			_ = s.sessionRepo.DeleteByToken(db, token)
			return nil, apperrors.ErrNotAuthenticated
		}
		return nil, apperrors.PersistenceError(err)
	}

	return user, nil
}

func (s *SessionServiceImpl) Terminate(db *gorm.DB, token string) error {
	if err := s.sessionRepo.DeleteByToken(db, token); err != nil {
		return apperrors.PersistenceError(err)
	}
	return nil
}

func (s *SessionServiceImpl) PurgeExpired(db *gorm.DB) (int64, error) {
	return s.sessionRepo.DeleteExpired(db)
}
