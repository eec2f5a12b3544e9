package repo

import (
	"errors"
	"estatedesk-backend/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

type UserRepoInterface interface {
	CreateUser(user *models.User) error
	GetUserByID(id uuid.UUID) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(id uuid.UUID, updates map[string]interface{}) (*models.User, error)
}

func NewUserRepository(db *gorm.DB) UserRepoInterface {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(user *models.User) error {
	user.UUID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *UserRepo) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Where("uuid = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) UpdateUser(id uuid.UUID, updates map[string]interface{}) (*models.User, error) {
	updates["updated_at"] = time.Now()
	if err := r.db.Model(&models.User{}).Where("uuid = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetUserByID(id)
}
