package repo

import (
	"errors"
	"estatedesk-backend/internal/models"

	"gorm.io/gorm"
)

type SessionRepo struct {
	db *gorm.DB
}

type SessionRepoInterface interface {
	CreateSession(session *models.Session) error
	GetSessionByToken(token string) (*models.Session, error)
	DeleteSession(token string) error
}

func NewSessionRepository(db *gorm.DB) SessionRepoInterface {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) CreateSession(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *SessionRepo) GetSessionByToken(token string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepo) DeleteSession(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.Session{}).Error
}
