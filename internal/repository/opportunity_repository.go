package repository

import (
	"github.com/voluntai/voluntai-api/internal/models"
	"gorm.io/gorm"
)

// GormOpportunityRepository is a GORM implementation of OpportunityRepository
type GormOpportunityRepository struct {
	db *gorm.DB
}

// NewOpportunityRepository creates a new OpportunityRepository
func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &GormOpportunityRepository{db: db}
}

// Create creates a new posting
func (r *GormOpportunityRepository) Create(opportunity *models.Opportunity) error {
	return r.db.Create(opportunity).Error
}

// FindByID finds a posting by ID with optional preloading
func (r *GormOpportunityRepository) FindByID(id uint64, preload ...string) (*models.Opportunity, error) {
	var opportunity models.Opportunity
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&opportunity, id).Error; err != nil {
		return nil, err
	}

	return &opportunity, nil
}

// ListAll returns every posting with its creator preloaded
func (r *GormOpportunityRepository) ListAll() ([]models.Opportunity, error) {
	var opportunities []models.Opportunity
	if err := r.db.Preload("Creator").Find(&opportunities).Error; err != nil {
		return nil, err
	}
	return opportunities, nil
}

// ListByCreator returns the postings owned by an account
func (r *GormOpportunityRepository) ListByCreator(creatorID uint64) ([]models.Opportunity, error) {
	var opportunities []models.Opportunity
	if err := r.db.Where("creator_id = ?", creatorID).Find(&opportunities).Error; err != nil {
		return nil, err
	}
	return opportunities, nil
}

// Update persists changes to a posting
func (r *GormOpportunityRepository) Update(opportunity *models.Opportunity) error {
	return r.db.Save(opportunity).Error
}

// Delete removes a posting together with its enrollments and chat log
func (r *GormOpportunityRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("opportunity_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("opportunity_id = ?", id).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Opportunity{}, id).Error
	})
}

// CountByCreator counts postings owned by an account
func (r *GormOpportunityRepository) CountByCreator(creatorID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Opportunity{}).
		Where("creator_id = ?", creatorID).
		Count(&count).Error
	return count, err
}
