package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/voluntai/voluntai-api/internal/constants"
	"github.com/voluntai/voluntai-api/internal/models"
	"github.com/voluntai/voluntai-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAlreadyEnrolled    = errors.New("você já está inscrito")
	ErrNoSlotsAvailable   = errors.New("não há vagas disponíveis")
	ErrEnrollmentNotFound = errors.New("inscrição não encontrada")
	ErrNotConfirmAllowed  = errors.New("sem permissão para confirmar esta presença")
)

// EnrollmentService handles the enrollment ledger: enrolling, cancelling,
// attendance confirmation and volunteer statistics.
type EnrollmentService struct {
	enrollmentRepo  repository.EnrollmentRepository
	opportunityRepo repository.OpportunityRepository
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(enrollmentRepo repository.EnrollmentRepository, opportunityRepo repository.OpportunityRepository) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo:  enrollmentRepo,
		opportunityRepo: opportunityRepo,
	}
}

// Statistics aggregates a volunteer's confirmed enrollments.
type Statistics struct {
	TotalActions int
	TotalHours   int
	Categories   map[string]int
	Enrollments  []models.Enrollment
}

// Enroll creates an enrollment for the volunteer. Duplicates and exhausted
// slot capacity are rejected inside the insert transaction.
func (s *EnrollmentService) Enroll(volunteerID, opportunityID uint64) (*models.Enrollment, error) {
	if _, err := s.opportunityRepo.FindByID(opportunityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("failed to find opportunity: %w", err)
	}

	enrollment := &models.Enrollment{
		OpportunityID: opportunityID,
		VolunteerID:   volunteerID,
	}

	if err := s.enrollmentRepo.CreateChecked(enrollment); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrOpportunityNotFound
		case errors.Is(err, repository.ErrAlreadyEnrolled):
			return nil, ErrAlreadyEnrolled
		case errors.Is(err, repository.ErrCapacityReached):
			return nil, ErrNoSlotsAvailable
		default:
			return nil, fmt.Errorf("failed to enroll: %w", err)
		}
	}

	return enrollment, nil
}

// Cancel removes any enrollment matching (volunteer, posting). Cancelling a
// non-existent enrollment is a no-op.
func (s *EnrollmentService) Cancel(volunteerID, opportunityID uint64) error {
	if err := s.enrollmentRepo.DeleteByVolunteerAndOpportunity(volunteerID, opportunityID); err != nil {
		return fmt.Errorf("failed to cancel enrollment: %w", err)
	}
	return nil
}

// ListMine returns the volunteer's enrollments with postings preloaded.
func (s *EnrollmentService) ListMine(volunteerID uint64) ([]models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.ListByVolunteer(volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}

// ListForOpportunity returns a posting's enrollments with volunteers preloaded.
func (s *EnrollmentService) ListForOpportunity(opportunityID uint64) ([]models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.ListByOpportunity(opportunityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollees: %w", err)
	}
	return enrollments, nil
}

// ConfirmAttendance marks an enrollment confirmed. Only the posting's owner
// may confirm; hours default to 1 when not supplied.
func (s *EnrollmentService) ConfirmAttendance(enrollmentID, actorID uint64, hours int) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.FindByID(enrollmentID, "Opportunity")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to find enrollment: %w", err)
	}

	if enrollment.Opportunity.CreatorID != actorID {
		return nil, ErrNotConfirmAllowed
	}

	if hours <= 0 {
		hours = constants.DefaultConfirmedHours
	}

	now := time.Now()
	enrollment.Confirmed = true
	enrollment.ConfirmedAt = &now
	enrollment.Hours = hours

	if err := s.enrollmentRepo.Update(enrollment); err != nil {
		return nil, fmt.Errorf("failed to confirm attendance: %w", err)
	}

	return enrollment, nil
}

// GetStatistics aggregates the volunteer's confirmed enrollments: action
// count, total hours and per-category frequencies. Computed fresh per call.
func (s *EnrollmentService) GetStatistics(volunteerID uint64) (*Statistics, error) {
	enrollments, err := s.enrollmentRepo.ListConfirmedByVolunteer(volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load confirmed enrollments: %w", err)
	}

	stats := &Statistics{
		TotalActions: len(enrollments),
		Categories:   make(map[string]int),
		Enrollments:  enrollments,
	}

	for _, e := range enrollments {
		stats.TotalHours += e.Hours

		category := e.Opportunity.Category
		if category == "" {
			category = constants.DefaultCategory
		}
		stats.Categories[category]++
	}

	return stats, nil
}
