package repo

import (
	"errors"
	"estatedesk-backend/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepo represents the repository for the project model
type ProjectRepo struct {
	db *gorm.DB
}

type ProjectRepoInterface interface {
	CreateProject(project *models.Project) (uuid.UUID, error)
	GetAllProjects() ([]models.Project, error)
	GetProjectByID(id uuid.UUID) (*models.Project, error)
	UpdateProject(id uuid.UUID, updates map[string]interface{}) (*models.Project, error)
}

func NewProjectRepository(db *gorm.DB) ProjectRepoInterface {
	return &ProjectRepo{db: db}
}

// CreateProject creates a new project in the database
func (r *ProjectRepo) CreateProject(project *models.Project) (uuid.UUID, error) {
	id := uuid.New()
	project.UUID = id
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()
	err := r.db.Create(project).Error
	return id, err
}

// GetAllProjects returns all projects with their documents preloaded
func (r *ProjectRepo) GetAllProjects() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Documents").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepo) GetProjectByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Documents").Where("uuid = ?", id).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepo) UpdateProject(id uuid.UUID, updates map[string]interface{}) (*models.Project, error) {
	updates["updated_at"] = time.Now()
	res := r.db.Model(&models.Project{}).Where("uuid = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetProjectByID(id)
}
