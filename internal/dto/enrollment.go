package dto

import (
	"time"

	"github.com/voluntai/voluntai-api/internal/models"
	"github.com/voluntai/voluntai-api/internal/services"
)

// EnrollmentDTO represents an enrollment in API responses. The posting or the
// volunteer is attached when preloaded.
type EnrollmentDTO struct {
	ID            uint64          `json:"id"`
	OpportunityID uint64          `json:"vagaId"`
	VolunteerID   uint64          `json:"voluntarioId"`
	Confirmed     bool            `json:"presencaConfirmada"`
	ConfirmedAt   *time.Time      `json:"dataConfirmacao"`
	Hours         int             `json:"horasVoluntariadas"`
	CreatedAt     time.Time       `json:"created_at"`
	Opportunity   *OpportunityDTO `json:"vaga,omitempty"`
	Volunteer     *UserDTO        `json:"voluntario,omitempty"`
}

// StatisticsDTO aggregates a volunteer's confirmed enrollments.
type StatisticsDTO struct {
	TotalActions int             `json:"totalAcoes"`
	TotalHours   int             `json:"totalHoras"`
	Categories   map[string]int  `json:"categorias"`
	Enrollments  []EnrollmentDTO `json:"inscricoes"`
}

// OrganizationMetricsDTO is the reporting payload for organization accounts.
type OrganizationMetricsDTO struct {
	TotalPostings    int64 `json:"total_vagas_criadas"`
	TotalEnrollments int64 `json:"total_inscricoes"`
}

// ToEnrollmentDTO converts an Enrollment model to EnrollmentDTO
func ToEnrollmentDTO(enrollment models.Enrollment) EnrollmentDTO {
	dto := EnrollmentDTO{
		ID:            enrollment.ID,
		OpportunityID: enrollment.OpportunityID,
		VolunteerID:   enrollment.VolunteerID,
		Confirmed:     enrollment.Confirmed,
		ConfirmedAt:   enrollment.ConfirmedAt,
		Hours:         enrollment.Hours,
		CreatedAt:     enrollment.CreatedAt,
	}

	if enrollment.Opportunity.ID != 0 {
		opportunity := ToOpportunityDTO(enrollment.Opportunity, false)
		dto.Opportunity = &opportunity
	}

	if enrollment.Volunteer.ID != 0 {
		volunteer := ToUserDTO(enrollment.Volunteer)
		dto.Volunteer = &volunteer
	}

	return dto
}

// ToEnrollmentDTOs converts a slice of enrollments.
func ToEnrollmentDTOs(enrollments []models.Enrollment) []EnrollmentDTO {
	dtos := make([]EnrollmentDTO, len(enrollments))
	for i, e := range enrollments {
		dtos[i] = ToEnrollmentDTO(e)
	}
	return dtos
}

// ToStatisticsDTO converts the service aggregation to its API shape.
func ToStatisticsDTO(stats services.Statistics) StatisticsDTO {
	return StatisticsDTO{
		TotalActions: stats.TotalActions,
		TotalHours:   stats.TotalHours,
		Categories:   stats.Categories,
		Enrollments:  ToEnrollmentDTOs(stats.Enrollments),
	}
}
