package models

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType string

const (
	DocumentTypeLegal     DocumentType = "legal"
	DocumentTypeMarketing DocumentType = "marketing"
	DocumentTypeTechnical DocumentType = "technical"
	DocumentTypeOther     DocumentType = "other"
)

type IndexingStatus string

const (
	IndexingPending    IndexingStatus = "pending"
	IndexingProcessing IndexingStatus = "processing"
	IndexingCompleted  IndexingStatus = "completed"
	IndexingFailed     IndexingStatus = "failed"
)

// Document is an uploaded project file. GeminiFileURI is the provider-side
// file reference; documents without one carry no chat context.
type Document struct {
	UUID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"uuid"`
	ProjectUUID    uuid.UUID      `gorm:"type:uuid;not null" json:"project_uuid"`
	Name           string         `gorm:"not null" json:"name"`
	URL            string         `gorm:"not null" json:"url"`
	Type           DocumentType   `gorm:"default:'other'" json:"type"`
	IndexingStatus IndexingStatus `gorm:"default:'pending'" json:"indexing_status"`
	GeminiFileURI  *string        `json:"gemini_file_uri"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
