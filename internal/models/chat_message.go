package models

import "time"

// ChatMessage belongs to an opportunity's chat log. Messages are append-only
// and listed ascending by creation time.
type ChatMessage struct {
	ID            uint64 `gorm:"primarykey" json:"id"`
	Text          string `gorm:"type:text;not null" json:"mensagem"`
	OpportunityID uint64 `gorm:"not null;index" json:"vagaId"`
	AuthorID      uint64 `gorm:"not null" json:"usuarioId"`

	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Opportunity Opportunity `gorm:"foreignKey:OpportunityID" json:"-"`
	Author      User        `gorm:"foreignKey:AuthorID" json:"-"`
}
