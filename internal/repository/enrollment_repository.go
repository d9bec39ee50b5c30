package repository

import (
	"errors"

	"github.com/voluntai/voluntai-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrAlreadyEnrolled is returned when the (volunteer, posting) pair already exists.
	ErrAlreadyEnrolled = errors.New("enrollment repository: volunteer already enrolled")
	// ErrCapacityReached is returned when the posting's slots are exhausted.
	ErrCapacityReached = errors.New("enrollment repository: no slots available")
)

// GormEnrollmentRepository is a GORM implementation of EnrollmentRepository
type GormEnrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &GormEnrollmentRepository{db: db}
}

// CreateChecked inserts an enrollment inside a transaction that locks the
// posting row first. Concurrent enrollers for the same posting serialize on
// that lock, so the capacity count cannot be read stale. A duplicate insert
// that races past the pre-count is caught by the unique index and reported as
// ErrAlreadyEnrolled.
func (r *GormEnrollmentRepository) CreateChecked(enrollment *models.Enrollment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var opportunity models.Opportunity
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&opportunity, enrollment.OpportunityID).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.Enrollment{}).
			Where("opportunity_id = ? AND volunteer_id = ?", enrollment.OpportunityID, enrollment.VolunteerID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyEnrolled
		}

		if opportunity.SlotsAvailable > 0 {
			var enrolled int64
			if err := tx.Model(&models.Enrollment{}).
				Where("opportunity_id = ?", enrollment.OpportunityID).
				Count(&enrolled).Error; err != nil {
				return err
			}
			if enrolled >= int64(opportunity.SlotsAvailable) {
				return ErrCapacityReached
			}
		}

		if err := tx.Create(enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyEnrolled
			}
			return err
		}
		return nil
	})
}

// FindByID finds an enrollment by ID with optional preloading
func (r *GormEnrollmentRepository) FindByID(id uint64, preload ...string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&enrollment, id).Error; err != nil {
		return nil, err
	}

	return &enrollment, nil
}

// DeleteByVolunteerAndOpportunity hard-deletes any matching enrollment
func (r *GormEnrollmentRepository) DeleteByVolunteerAndOpportunity(volunteerID, opportunityID uint64) error {
	return r.db.Where("volunteer_id = ? AND opportunity_id = ?", volunteerID, opportunityID).
		Delete(&models.Enrollment{}).Error
}

// ListByVolunteer returns an account's enrollments with postings preloaded
func (r *GormEnrollmentRepository) ListByVolunteer(volunteerID uint64) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := r.db.Preload("Opportunity").
		Where("volunteer_id = ?", volunteerID).
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListConfirmedByVolunteer returns only confirmed enrollments
func (r *GormEnrollmentRepository) ListConfirmedByVolunteer(volunteerID uint64) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := r.db.Preload("Opportunity").
		Where("volunteer_id = ? AND confirmed = ?", volunteerID, true).
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListByOpportunity returns a posting's enrollments with volunteers preloaded
func (r *GormEnrollmentRepository) ListByOpportunity(opportunityID uint64) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := r.db.Preload("Volunteer").
		Where("opportunity_id = ?", opportunityID).
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Update persists changes to an enrollment
func (r *GormEnrollmentRepository) Update(enrollment *models.Enrollment) error {
	return r.db.Save(enrollment).Error
}

// CountByOpportunityOwner counts enrollments across all postings of an owner
func (r *GormEnrollmentRepository) CountByOpportunityOwner(ownerID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).
		Joins("JOIN opportunities ON opportunities.id = enrollments.opportunity_id").
		Where("opportunities.creator_id = ?", ownerID).
		Count(&count).Error
	return count, err
}
