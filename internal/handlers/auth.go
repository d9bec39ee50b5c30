package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voluntai/voluntai-api/internal/auth"
	"github.com/voluntai/voluntai-api/internal/dto"
	apierrors "github.com/voluntai/voluntai-api/internal/errors"
	"github.com/voluntai/voluntai-api/internal/middleware"
	"github.com/voluntai/voluntai-api/internal/models"
	"github.com/voluntai/voluntai-api/internal/services"
)

// AuthHandler coordinates registration, login and the current-account lookup.
type AuthHandler struct {
	authService *services.AuthService
	tokenIssuer *auth.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokenIssuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenIssuer: tokenIssuer,
	}
}

// Register creates an account and issues a credential.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name      string   `json:"nome"`
		Email     string   `json:"email"`
		Password  string   `json:"senha"`
		Phone     string   `json:"telefone"`
		CEP       string   `json:"cep"`
		Street    string   `json:"rua"`
		City      string   `json:"cidade"`
		State     string   `json:"estado"`
		Kind      string   `json:"tipo"`
		CPF       string   `json:"cpf"`
		CNPJ      string   `json:"cnpj"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Campos obrigatórios faltando.")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		CEP:       req.CEP,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Kind:      models.UserKind(req.Kind),
		CPF:       req.CPF,
		CNPJ:      req.CNPJ,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	token, err := h.tokenIssuer.Generate(user)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserDTO(*user),
	})
}

// Login verifies credentials and issues a fresh credential.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"senha"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Email e senha são obrigatórios.")
		return
	}
	if req.Email == "" || req.Password == "" {
		apierrors.BadRequest(c, "Email e senha são obrigatórios.")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	token, err := h.tokenIssuer.Generate(user)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserSummaryDTO(*user),
	})
}

// Me returns the authenticated account's full profile.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		apierrors.BadRequest(c, "Campos obrigatórios faltando.")
	case errors.Is(err, services.ErrCPFRequired):
		apierrors.BadRequest(c, "CPF é obrigatório para usuários do tipo físico.")
	case errors.Is(err, services.ErrCNPJRequired):
		apierrors.BadRequest(c, "CNPJ é obrigatório para usuários do tipo jurídico.")
	case errors.Is(err, services.ErrInvalidKind):
		apierrors.BadRequest(c, "Tipo de usuário inválido.")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.BadRequest(c, "Email já cadastrado.")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.BadRequest(c, "Credenciais inválidas.")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "Usuário não encontrado.")
	default:
		logInternal(c, err)
		apierrors.InternalError(c, "")
	}
}
