package repo

import (
	"errors"
	"estatedesk-backend/internal/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepo struct {
	db *gorm.DB
}

type ChatRepoInterface interface {
	CreateConversation(conv *models.Conversation) error
	GetConversationByID(id uuid.UUID) (*models.Conversation, error)
	GetConversationsByUser(userID uuid.UUID) ([]models.Conversation, error)
	CreateMessage(msg *models.Message) error
	GetLatestMessages(conversationID uuid.UUID, limit int) ([]models.Message, error)
	GetMessages(conversationID uuid.UUID) ([]models.Message, error)
}

func NewChatRepository(db *gorm.DB) ChatRepoInterface {
	return &ChatRepo{db: db}
}

func (r *ChatRepo) CreateConversation(conv *models.Conversation) error {
	conv.UUID = uuid.New()
	conv.CreatedAt = time.Now()
	conv.UpdatedAt = time.Now()
	return r.db.Create(conv).Error
}

// GetConversationByID returns (nil, nil) when no row exists.
func (r *ChatRepo) GetConversationByID(id uuid.UUID) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.Where("uuid = ?", id).First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetConversationsByUser returns the user's conversations, most recently
// updated first.
func (r *ChatRepo) GetConversationsByUser(userID uuid.UUID) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.Where("user_uuid = ?", userID).
		Order("updated_at desc").
		Find(&convs).Error
	return convs, err
}

// CreateMessage inserts the message and refreshes the owning conversation's
// updated_at so conversation listings sort by recency.
func (r *ChatRepo) CreateMessage(msg *models.Message) error {
	msg.UUID = uuid.New()
	msg.CreatedAt = time.Now()
	if err := r.db.Create(msg).Error; err != nil {
		return err
	}
	return r.db.Model(&models.Conversation{}).
		Where("uuid = ?", msg.ConversationUUID).
		Update("updated_at", time.Now()).Error
}

// GetLatestMessages returns the newest messages first, capped at limit.
func (r *ChatRepo) GetLatestMessages(conversationID uuid.UUID, limit int) ([]models.Message, error) {
	var msgs []models.Message

	// default + cap
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	err := r.db.Where("conversation_uuid = ?", conversationID).
		Order("created_at desc").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}

// GetMessages returns the full transcript, oldest first.
func (r *ChatRepo) GetMessages(conversationID uuid.UUID) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.Where("conversation_uuid = ?", conversationID).
		Order("created_at asc").
		Find(&msgs).Error
	return msgs, err
}
