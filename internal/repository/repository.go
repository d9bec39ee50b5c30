package repository

import (
	"github.com/voluntai/voluntai-api/internal/models"
)

// UserRepository defines the interface for account data access
type UserRepository interface {
	// Create creates a new account
	Create(user *models.User) error

	// FindByID finds an account by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds an account by email
	FindByEmail(email string) (*models.User, error)

	// Update persists changes to an account
	Update(user *models.User) error
}

// OpportunityRepository defines the interface for job-posting data access
type OpportunityRepository interface {
	// Create creates a new posting
	Create(opportunity *models.Opportunity) error

	// FindByID finds a posting by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Opportunity, error)

	// ListAll returns every posting with its creator preloaded
	ListAll() ([]models.Opportunity, error)

	// ListByCreator returns the postings owned by an account
	ListByCreator(creatorID uint64) ([]models.Opportunity, error)

	// Update persists changes to a posting
	Update(opportunity *models.Opportunity) error

	// Delete removes a posting together with its enrollments and chat log
	Delete(id uint64) error

	// CountByCreator counts postings owned by an account
	CountByCreator(creatorID uint64) (int64, error)
}

// EnrollmentRepository defines the interface for the enrollment ledger
type EnrollmentRepository interface {
	// CreateChecked inserts an enrollment inside a transaction that locks the
	// posting row and re-checks the duplicate invariant and the slot capacity.
	CreateChecked(enrollment *models.Enrollment) error

	// FindByID finds an enrollment by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Enrollment, error)

	// DeleteByVolunteerAndOpportunity hard-deletes any matching enrollment
	DeleteByVolunteerAndOpportunity(volunteerID, opportunityID uint64) error

	// ListByVolunteer returns an account's enrollments with postings preloaded
	ListByVolunteer(volunteerID uint64) ([]models.Enrollment, error)

	// ListConfirmedByVolunteer returns only confirmed enrollments
	ListConfirmedByVolunteer(volunteerID uint64) ([]models.Enrollment, error)

	// ListByOpportunity returns a posting's enrollments with volunteers preloaded
	ListByOpportunity(opportunityID uint64) ([]models.Enrollment, error)

	// Update persists changes to an enrollment
	Update(enrollment *models.Enrollment) error

	// CountByOpportunityOwner counts enrollments across all postings of an owner
	CountByOpportunityOwner(ownerID uint64) (int64, error)
}

// ChatRepository defines the interface for the per-posting chat log
type ChatRepository interface {
	// Create appends a message to a posting's chat log
	Create(message *models.ChatMessage) error

	// ListByOpportunity returns a posting's messages oldest-first with authors preloaded
	ListByOpportunity(opportunityID uint64) ([]models.ChatMessage, error)
}
