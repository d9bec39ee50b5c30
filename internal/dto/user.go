package dto

import "github.com/voluntai/voluntai-api/internal/models"

// UserDTO is the full profile returned to the account itself.
type UserDTO struct {
	ID        uint64          `json:"id"`
	Name      string          `json:"nome"`
	Email     string          `json:"email"`
	Kind      models.UserKind `json:"tipo"`
	Phone     string          `json:"telefone"`
	CEP       string          `json:"cep"`
	Street    string          `json:"rua"`
	City      string          `json:"cidade"`
	State     string          `json:"estado"`
	CPF       *string         `json:"cpf"`
	CNPJ      *string         `json:"cnpj"`
	Latitude  *float64        `json:"latitude"`
	Longitude *float64        `json:"longitude"`
}

// UserSummaryDTO is the credential response's profile subset.
type UserSummaryDTO struct {
	ID    uint64          `json:"id"`
	Name  string          `json:"nome"`
	Email string          `json:"email"`
	Kind  models.UserKind `json:"tipo"`
}

// PublicUserDTO is the public owner/author subset attached to postings.
type PublicUserDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email,omitempty"`
}

// AuthResponse carries a fresh credential plus the account it belongs to.
type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Kind:      user.Kind,
		Phone:     user.Phone,
		CEP:       user.CEP,
		Street:    user.Street,
		City:      user.City,
		State:     user.State,
		CPF:       user.CPF,
		CNPJ:      user.CNPJ,
		Latitude:  user.Latitude,
		Longitude: user.Longitude,
	}
}

// ToUserSummaryDTO converts a User model to UserSummaryDTO
func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Kind:  user.Kind,
	}
}

// ToPublicUserDTO converts a User model to PublicUserDTO
func ToPublicUserDTO(user models.User, includeEmail bool) PublicUserDTO {
	dto := PublicUserDTO{
		ID:   user.ID,
		Name: user.Name,
	}
	if includeEmail {
		dto.Email = user.Email
	}
	return dto
}
