package dto

import (
	"time"

	"github.com/voluntai/voluntai-api/internal/models"
)

// ChatMessageDTO represents a chat message in API responses.
type ChatMessageDTO struct {
	ID            uint64         `json:"id"`
	Text          string         `json:"mensagem"`
	OpportunityID uint64         `json:"vagaId"`
	AuthorID      uint64         `json:"usuarioId"`
	CreatedAt     time.Time      `json:"createdAt"`
	Author        *PublicUserDTO `json:"usuario,omitempty"`
}

// ToChatMessageDTO converts a ChatMessage model to ChatMessageDTO
func ToChatMessageDTO(message models.ChatMessage) ChatMessageDTO {
	dto := ChatMessageDTO{
		ID:            message.ID,
		Text:          message.Text,
		OpportunityID: message.OpportunityID,
		AuthorID:      message.AuthorID,
		CreatedAt:     message.CreatedAt,
	}

	if message.Author.ID != 0 {
		author := ToPublicUserDTO(message.Author, false)
		dto.Author = &author
	}

	return dto
}

// ToChatMessageDTOs converts a slice of messages.
func ToChatMessageDTOs(messages []models.ChatMessage) []ChatMessageDTO {
	dtos := make([]ChatMessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = ToChatMessageDTO(m)
	}
	return dtos
}
