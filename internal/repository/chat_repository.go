package repository

import (
	"github.com/voluntai/voluntai-api/internal/models"
	"gorm.io/gorm"
)

// GormChatRepository is a GORM implementation of ChatRepository
type GormChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &GormChatRepository{db: db}
}

// Create appends a message to a posting's chat log
func (r *GormChatRepository) Create(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

// ListByOpportunity returns a posting's messages oldest-first with authors preloaded
func (r *GormChatRepository) ListByOpportunity(opportunityID uint64) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := r.db.Preload("Author").
		Where("opportunity_id = ?", opportunityID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
