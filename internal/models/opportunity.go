package models

import "time"

// Opportunity is a volunteer job posting ("vaga") owned by the account that
// created it. JSON field names follow the original mobile API contract.
type Opportunity struct {
	ID             uint64     `gorm:"primarykey" json:"id"`
	Title          string     `gorm:"type:varchar(255);not null" json:"nome"`
	Description    string     `gorm:"type:text;not null" json:"descricao"`
	Location       string     `gorm:"type:varchar(255);not null" json:"local"`
	ScheduledAt    *time.Time `json:"data_hora"`
	SlotsAvailable int        `json:"vagas_disponiveis"`
	Category       string     `gorm:"type:varchar(120)" json:"categoria"`
	CEP            string     `gorm:"type:varchar(12)" json:"cep"`
	City           string     `gorm:"type:varchar(120)" json:"cidade"`
	State          string     `gorm:"type:varchar(60)" json:"estado"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	CreatorID      uint64     `gorm:"not null;index" json:"criadorId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Creator     User          `gorm:"foreignKey:CreatorID" json:"-"`
	Enrollments []Enrollment  `gorm:"foreignKey:OpportunityID" json:"-"`
	Messages    []ChatMessage `gorm:"foreignKey:OpportunityID" json:"-"`
}
