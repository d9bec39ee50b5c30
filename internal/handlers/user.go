package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voluntai/voluntai-api/internal/dto"
	apierrors "github.com/voluntai/voluntai-api/internal/errors"
	"github.com/voluntai/voluntai-api/internal/middleware"
	"github.com/voluntai/voluntai-api/internal/services"
)

// UserHandler coordinates profile HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile returns the caller's profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateProfile applies the provided fields to the caller's profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateRequest struct {
		Name      *string  `json:"nome"`
		Phone     *string  `json:"telefone"`
		CPF       *string  `json:"cpf"`
		CNPJ      *string  `json:"cnpj"`
		CEP       *string  `json:"cep"`
		Street    *string  `json:"rua"`
		City      *string  `json:"cidade"`
		State     *string  `json:"estado"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Requisição inválida.")
		return
	}

	user, err := h.userService.UpdateProfile(userID, services.UpdateProfileInput{
		Name:      req.Name,
		Phone:     req.Phone,
		CPF:       req.CPF,
		CNPJ:      req.CNPJ,
		CEP:       req.CEP,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "Usuário não encontrado.")
	case errors.Is(err, services.ErrTaxIDMismatch):
		apierrors.BadRequest(c, "Documento não corresponde ao tipo de conta.")
	default:
		logInternal(c, err)
		apierrors.InternalError(c, "")
	}
}
