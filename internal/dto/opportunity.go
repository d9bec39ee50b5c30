package dto

import (
	"time"

	"github.com/voluntai/voluntai-api/internal/models"
)

// OpportunityDTO represents a job posting in API responses.
type OpportunityDTO struct {
	ID             uint64         `json:"id"`
	Title          string         `json:"nome"`
	Description    string         `json:"descricao"`
	Location       string         `json:"local"`
	ScheduledAt    *time.Time     `json:"data_hora"`
	SlotsAvailable int            `json:"vagas_disponiveis"`
	Category       string         `json:"categoria"`
	CEP            string         `json:"cep"`
	City           string         `json:"cidade"`
	State          string         `json:"estado"`
	Latitude       *float64       `json:"latitude"`
	Longitude      *float64       `json:"longitude"`
	CreatorID      uint64         `json:"criadorId"`
	CreatedAt      time.Time      `json:"created_at"`
	Creator        *PublicUserDTO `json:"criador,omitempty"`
}

// ToOpportunityDTO converts an Opportunity model to OpportunityDTO. The
// creator subset is attached when preloaded.
func ToOpportunityDTO(opportunity models.Opportunity, includeCreatorEmail bool) OpportunityDTO {
	dto := OpportunityDTO{
		ID:             opportunity.ID,
		Title:          opportunity.Title,
		Description:    opportunity.Description,
		Location:       opportunity.Location,
		ScheduledAt:    opportunity.ScheduledAt,
		SlotsAvailable: opportunity.SlotsAvailable,
		Category:       opportunity.Category,
		CEP:            opportunity.CEP,
		City:           opportunity.City,
		State:          opportunity.State,
		Latitude:       opportunity.Latitude,
		Longitude:      opportunity.Longitude,
		CreatorID:      opportunity.CreatorID,
		CreatedAt:      opportunity.CreatedAt,
	}

	if opportunity.Creator.ID != 0 {
		creator := ToPublicUserDTO(opportunity.Creator, includeCreatorEmail)
		dto.Creator = &creator
	}

	return dto
}

// ToOpportunityDTOs converts a slice of postings.
func ToOpportunityDTOs(opportunities []models.Opportunity, includeCreatorEmail bool) []OpportunityDTO {
	dtos := make([]OpportunityDTO, len(opportunities))
	for i, o := range opportunities {
		dtos[i] = ToOpportunityDTO(o, includeCreatorEmail)
	}
	return dtos
}
