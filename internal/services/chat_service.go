package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/voluntai/voluntai-api/internal/models"
	"github.com/voluntai/voluntai-api/internal/repository"
	"gorm.io/gorm"
)

var ErrEmptyMessage = errors.New("mensagem vazia")

// ChatService handles the append-only per-posting chat log.
type ChatService struct {
	chatRepo        repository.ChatRepository
	opportunityRepo repository.OpportunityRepository
}

// NewChatService creates a new ChatService.
func NewChatService(chatRepo repository.ChatRepository, opportunityRepo repository.OpportunityRepository) *ChatService {
	return &ChatService{
		chatRepo:        chatRepo,
		opportunityRepo: opportunityRepo,
	}
}

// Send stores a message tied to the caller and the posting. Whitespace-only
// messages are rejected.
func (s *ChatService) Send(authorID, opportunityID uint64, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := s.opportunityRepo.FindByID(opportunityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("failed to find opportunity: %w", err)
	}

	message := &models.ChatMessage{
		Text:          text,
		OpportunityID: opportunityID,
		AuthorID:      authorID,
	}

	if err := s.chatRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	return message, nil
}

// ListForOpportunity returns a posting's messages oldest-first with authors.
func (s *ChatService) ListForOpportunity(opportunityID uint64) ([]models.ChatMessage, error) {
	messages, err := s.chatRepo.ListByOpportunity(opportunityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
