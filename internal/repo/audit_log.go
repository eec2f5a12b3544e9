package repo

import (
	"estatedesk-backend/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepo struct {
	db *gorm.DB
}

type AuditLogRepoInterface interface {
	CreateAuditLog(entry *models.AuditLog) error
	GetRecentAuditLogs(limit int) ([]models.AuditLog, error)
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepoInterface {
	return &AuditLogRepo{db: db}
}

func (r *AuditLogRepo) CreateAuditLog(entry *models.AuditLog) error {
	entry.UUID = uuid.New()
	entry.CreatedAt = time.Now()
	return r.db.Create(entry).Error
}

func (r *AuditLogRepo) GetRecentAuditLogs(limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog

	if limit <= 0 {
		limit = 100
	}

	err := r.db.Order("created_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}
