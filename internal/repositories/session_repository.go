package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gadsdencode/pixprofolio/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(db *gorm.DB, session *models.Session) error
	FindByToken(db *gorm.DB, token string) (*models.Session, error)
	DeleteByToken(db *gorm.DB, token string) error
	DeleteByUserID(db *gorm.DB, userID string) error
	DeleteExpired(db *gorm.DB) (int64, error)
}

type SessionRepositoryImpl struct{}

func NewSessionRepository() SessionRepository {
	return &SessionRepositoryImpl{}
}

func (r *SessionRepositoryImpl) Create(db *gorm.DB, session *models.Session) error {
	return db.Create(session).Error
}

func (r *SessionRepositoryImpl) FindByToken(db *gorm.DB, token string) (*models.Session, error) {
	var session models.Session
	err := db.First(&session, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepositoryImpl) DeleteByToken(db *gorm.DB, token string) error {
	return db.Delete(&models.Session{}, "token = ?", token).Error
}

func (r *SessionRepositoryImpl) DeleteByUserID(db *gorm.DB, userID string) error {
	return db.Delete(&models.Session{}, "user_id = ?", userID).Error
}

// DeleteExpired removes sessions past their expiry; run periodically.
func (r *SessionRepositoryImpl) DeleteExpired(db *gorm.DB) (int64, error) {
	result := db.Delete(&models.Session{}, "expires_at < ?", time.Now())
	return result.RowsAffected, result.Error
}
