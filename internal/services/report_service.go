package services

import (
	"fmt"

	"github.com/voluntai/voluntai-api/internal/repository"
)

// ReportService computes organization metrics on demand. Nothing is
// materialized; both counts hit the store per request.
type ReportService struct {
	opportunityRepo repository.OpportunityRepository
	enrollmentRepo  repository.EnrollmentRepository
}

// NewReportService creates a new ReportService.
func NewReportService(opportunityRepo repository.OpportunityRepository, enrollmentRepo repository.EnrollmentRepository) *ReportService {
	return &ReportService{
		opportunityRepo: opportunityRepo,
		enrollmentRepo:  enrollmentRepo,
	}
}

// OrganizationMetrics holds the counts for an organization account.
type OrganizationMetrics struct {
	TotalPostings    int64
	TotalEnrollments int64
}

// GetOrganizationMetrics counts postings owned by the caller and enrollments
// across those postings.
func (s *ReportService) GetOrganizationMetrics(ownerID uint64) (*OrganizationMetrics, error) {
	totalPostings, err := s.opportunityRepo.CountByCreator(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count postings: %w", err)
	}

	totalEnrollments, err := s.enrollmentRepo.CountByOpportunityOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}

	return &OrganizationMetrics{
		TotalPostings:    totalPostings,
		TotalEnrollments: totalEnrollments,
	}, nil
}
