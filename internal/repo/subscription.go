package repo

import (
	"errors"
	"estatedesk-backend/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepo struct {
	db *gorm.DB
}

type SubscriptionRepoInterface interface {
	CreateSubscription(sub *models.Subscription) error
	GetAllSubscriptions() ([]models.Subscription, error)
	GetSubscriptionByUser(userID uuid.UUID) (*models.Subscription, error)
	UpdateSubscription(id uuid.UUID, updates map[string]interface{}) (*models.Subscription, error)
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepoInterface {
	return &SubscriptionRepo{db: db}
}

func (r *SubscriptionRepo) CreateSubscription(sub *models.Subscription) error {
	sub.UUID = uuid.New()
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = time.Now()
	return r.db.Create(sub).Error
}

func (r *SubscriptionRepo) GetAllSubscriptions() ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepo) GetSubscriptionByUser(userID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.Where("user_uuid = ?", userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepo) UpdateSubscription(id uuid.UUID, updates map[string]interface{}) (*models.Subscription, error) {
	updates["updated_at"] = time.Now()
	res := r.db.Model(&models.Subscription{}).Where("uuid = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	var sub models.Subscription
	if err := r.db.Where("uuid = ?", id).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}
