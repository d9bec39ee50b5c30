package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/voluntai/voluntai-api/internal/models"
	"github.com/voluntai/voluntai-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields        = errors.New("campos obrigatórios faltando")
	ErrCPFRequired          = errors.New("cpf é obrigatório para usuários do tipo físico")
	ErrCNPJRequired         = errors.New("cnpj é obrigatório para usuários do tipo jurídico")
	ErrInvalidKind          = errors.New("tipo de usuário inválido")
	ErrEmailTaken           = errors.New("email já cadastrado")
	ErrInvalidCredentials   = errors.New("credenciais inválidas")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new account.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Phone     string
	CEP       string
	Street    string
	City      string
	State     string
	Kind      models.UserKind
	CPF       string
	CNPJ      string
	Latitude  *float64
	Longitude *float64
}

// Register creates a new account. Individual accounts must carry a CPF,
// organization accounts a CNPJ, never both.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" || input.Kind == "" {
		return nil, ErrMissingFields
	}

	switch input.Kind {
	case models.KindIndividual:
		if strings.TrimSpace(input.CPF) == "" {
			return nil, ErrCPFRequired
		}
	case models.KindOrganization:
		if strings.TrimSpace(input.CNPJ) == "" {
			return nil, ErrCNPJRequired
		}
	default:
		return nil, ErrInvalidKind
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Phone:        input.Phone,
		CEP:          input.CEP,
		Street:       input.Street,
		City:         input.City,
		State:        input.State,
		Kind:         input.Kind,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
	}

	if input.Kind == models.KindIndividual {
		cpf := strings.TrimSpace(input.CPF)
		user.CPF = &cpf
	} else {
		cnpj := strings.TrimSpace(input.CNPJ)
		user.CNPJ = &cnpj
	}

	// A concurrent registration can slip past the FindByEmail check and hit
	// the unique index instead.
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns the account. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves an account by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
