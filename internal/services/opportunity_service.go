package services

import (
	"errors"
	"fmt"

	"github.com/voluntai/voluntai-api/internal/models"
	"github.com/voluntai/voluntai-api/internal/repository"
	"github.com/voluntai/voluntai-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrOpportunityNotFound      = errors.New("vaga não encontrada")
	ErrNotOpportunityOwner      = errors.New("somente o criador da vaga pode fazer isso")
	ErrMissingOpportunityFields = errors.New("campos obrigatórios da vaga faltando")
	ErrInvalidSchedule          = errors.New("formato de data inválido")
)

// OpportunityService handles job-posting business logic.
type OpportunityService struct {
	opportunityRepo repository.OpportunityRepository
}

// NewOpportunityService creates a new OpportunityService.
func NewOpportunityService(opportunityRepo repository.OpportunityRepository) *OpportunityService {
	return &OpportunityService{
		opportunityRepo: opportunityRepo,
	}
}

// GeoFilter restricts a listing to postings within RadiusKm of a coordinate.
type GeoFilter struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// CreateOpportunityInput represents input for creating a posting.
type CreateOpportunityInput struct {
	Title          string
	Description    string
	Location       string
	Schedule       string
	SlotsAvailable int
	Category       string
	CEP            string
	City           string
	State          string
	Latitude       *float64
	Longitude      *float64
	CreatorID      uint64
}

// UpdateOpportunityInput represents input for updating a posting. Nil fields
// are left untouched.
type UpdateOpportunityInput struct {
	Title          *string
	Description    *string
	Location       *string
	Schedule       *string
	SlotsAvailable *int
	Category       *string
	CEP            *string
	City           *string
	State          *string
	Latitude       *float64
	Longitude      *float64
}

// List returns all postings with creators preloaded. A geo filter keeps only
// postings with coordinates within the given radius.
func (s *OpportunityService) List(filter *GeoFilter) ([]models.Opportunity, error) {
	opportunities, err := s.opportunityRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	if filter == nil {
		return opportunities, nil
	}

	filtered := make([]models.Opportunity, 0, len(opportunities))
	for _, o := range opportunities {
		if o.Latitude == nil || o.Longitude == nil {
			continue
		}
		d := utils.DistanceKm(filter.Latitude, filter.Longitude, *o.Latitude, *o.Longitude)
		if d <= filter.RadiusKm {
			filtered = append(filtered, o)
		}
	}

	return filtered, nil
}

// Get returns a posting with its creator preloaded.
func (s *OpportunityService) Get(id uint64) (*models.Opportunity, error) {
	opportunity, err := s.opportunityRepo.FindByID(id, "Creator")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("failed to find opportunity: %w", err)
	}
	return opportunity, nil
}

// ListByCreator returns the postings owned by an account.
func (s *OpportunityService) ListByCreator(creatorID uint64) ([]models.Opportunity, error) {
	opportunities, err := s.opportunityRepo.ListByCreator(creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	return opportunities, nil
}

// Create creates a posting owned by the authenticated caller. The schedule is
// parsed from the fixed DD/MM/AAAA HH:MM format.
func (s *OpportunityService) Create(input CreateOpportunityInput) (*models.Opportunity, error) {
	if input.Title == "" || input.Description == "" || input.Location == "" || input.Schedule == "" {
		return nil, ErrMissingOpportunityFields
	}

	scheduledAt, err := utils.ParseSchedule(input.Schedule)
	if err != nil {
		return nil, ErrInvalidSchedule
	}

	opportunity := &models.Opportunity{
		Title:          input.Title,
		Description:    input.Description,
		Location:       input.Location,
		ScheduledAt:    &scheduledAt,
		SlotsAvailable: input.SlotsAvailable,
		Category:       input.Category,
		CEP:            input.CEP,
		City:           input.City,
		State:          input.State,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		CreatorID:      input.CreatorID,
	}

	if err := s.opportunityRepo.Create(opportunity); err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}

	return opportunity, nil
}

// Update applies the provided fields to a posting owned by the actor.
func (s *OpportunityService) Update(id, actorID uint64, input UpdateOpportunityInput) (*models.Opportunity, error) {
	opportunity, err := s.opportunityRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("failed to find opportunity: %w", err)
	}

	if opportunity.CreatorID != actorID {
		return nil, ErrNotOpportunityOwner
	}

	if input.Title != nil {
		opportunity.Title = *input.Title
	}
	if input.Description != nil {
		opportunity.Description = *input.Description
	}
	if input.Location != nil {
		opportunity.Location = *input.Location
	}
	if input.Schedule != nil {
		scheduledAt, err := utils.ParseSchedule(*input.Schedule)
		if err != nil {
			return nil, ErrInvalidSchedule
		}
		opportunity.ScheduledAt = &scheduledAt
	}
	if input.SlotsAvailable != nil {
		opportunity.SlotsAvailable = *input.SlotsAvailable
	}
	if input.Category != nil {
		opportunity.Category = *input.Category
	}
	if input.CEP != nil {
		opportunity.CEP = *input.CEP
	}
	if input.City != nil {
		opportunity.City = *input.City
	}
	if input.State != nil {
		opportunity.State = *input.State
	}
	if input.Latitude != nil {
		opportunity.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		opportunity.Longitude = input.Longitude
	}

	if err := s.opportunityRepo.Update(opportunity); err != nil {
		return nil, fmt.Errorf("failed to update opportunity: %w", err)
	}

	return opportunity, nil
}

// Delete removes a posting owned by the actor together with its enrollments
// and chat log.
func (s *OpportunityService) Delete(id, actorID uint64) error {
	opportunity, err := s.opportunityRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOpportunityNotFound
		}
		return fmt.Errorf("failed to find opportunity: %w", err)
	}

	if opportunity.CreatorID != actorID {
		return ErrNotOpportunityOwner
	}

	if err := s.opportunityRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete opportunity: %w", err)
	}

	return nil
}
