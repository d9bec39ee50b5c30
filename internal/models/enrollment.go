package models

import "time"

// Enrollment links a volunteer to an opportunity. Cancellation is a hard
// delete; confirmation is terminal. The composite unique index backs the
// one-enrollment-per-pair invariant.
type Enrollment struct {
	ID            uint64     `gorm:"primarykey" json:"id"`
	OpportunityID uint64     `gorm:"not null;uniqueIndex:idx_enrollments_vaga_voluntario" json:"vagaId"`
	VolunteerID   uint64     `gorm:"not null;uniqueIndex:idx_enrollments_vaga_voluntario" json:"voluntarioId"`
	Confirmed     bool       `gorm:"not null;default:false" json:"presencaConfirmada"`
	ConfirmedAt   *time.Time `json:"dataConfirmacao"`
	Hours         int        `gorm:"not null;default:0" json:"horasVoluntariadas"`

	CreatedAt time.Time `json:"created_at"`

	// Relations
	Opportunity Opportunity `gorm:"foreignKey:OpportunityID" json:"-"`
	Volunteer   User        `gorm:"foreignKey:VolunteerID" json:"-"`
}
