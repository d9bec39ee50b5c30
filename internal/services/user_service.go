package services

import (
	"errors"
	"fmt"

	"github.com/voluntai/voluntai-api/internal/models"
	"github.com/voluntai/voluntai-api/internal/repository"
	"gorm.io/gorm"
)

// ErrTaxIDMismatch is returned when a profile update carries the tax id of
// the other account kind.
var ErrTaxIDMismatch = errors.New("documento incompatível com o tipo de conta")

// UserService handles profile reads and updates.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// UpdateProfileInput carries the profile fields an account may change. Nil
// fields are left untouched; email, password and account kind are immutable
// through this path.
type UpdateProfileInput struct {
	Name      *string
	Phone     *string
	CPF       *string
	CNPJ      *string
	CEP       *string
	Street    *string
	City      *string
	State     *string
	Latitude  *float64
	Longitude *float64
}

// GetProfile returns an account's profile.
func (s *UserService) GetProfile(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies the provided fields to the caller's account.
func (s *UserService) UpdateProfile(id uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// An individual account carries a CPF, an organization a CNPJ, never both.
	if input.CPF != nil && user.Kind != models.KindIndividual {
		return nil, ErrTaxIDMismatch
	}
	if input.CNPJ != nil && user.Kind != models.KindOrganization {
		return nil, ErrTaxIDMismatch
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.CPF != nil {
		user.CPF = input.CPF
	}
	if input.CNPJ != nil {
		user.CNPJ = input.CNPJ
	}
	if input.CEP != nil {
		user.CEP = *input.CEP
	}
	if input.Street != nil {
		user.Street = *input.Street
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.State != nil {
		user.State = *input.State
	}
	if input.Latitude != nil {
		user.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		user.Longitude = input.Longitude
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
