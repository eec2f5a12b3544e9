package repo

import (
	"estatedesk-backend/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepo struct {
	db *gorm.DB
}

type DocumentRepoInterface interface {
	CreateDocument(doc *models.Document) error
	GetDocumentsByProject(projectID uuid.UUID) ([]models.Document, error)
}

func NewDocumentRepository(db *gorm.DB) DocumentRepoInterface {
	return &DocumentRepo{db: db}
}

func (r *DocumentRepo) CreateDocument(doc *models.Document) error {
	doc.UUID = uuid.New()
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()
	return r.db.Create(doc).Error
}

func (r *DocumentRepo) GetDocumentsByProject(projectID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Where("project_uuid = ?", projectID).Find(&docs).Error
	return docs, err
}
