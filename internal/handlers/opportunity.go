package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/voluntai/voluntai-api/internal/dto"
	apierrors "github.com/voluntai/voluntai-api/internal/errors"
	"github.com/voluntai/voluntai-api/internal/middleware"
	"github.com/voluntai/voluntai-api/internal/services"
)

// OpportunityHandler coordinates job-posting HTTP handlers.
type OpportunityHandler struct {
	opportunityService *services.OpportunityService
}

// NewOpportunityHandler creates a new OpportunityHandler.
func NewOpportunityHandler(opportunityService *services.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{
		opportunityService: opportunityService,
	}
}

// List returns all postings with owner name/email attached. Passing
// latitude, longitude and raio (km) keeps only postings within the radius.
func (h *OpportunityHandler) List(c *gin.Context) {
	var filter *services.GeoFilter

	latStr := c.Query("latitude")
	lngStr := c.Query("longitude")
	radiusStr := c.Query("raio")
	if latStr != "" || lngStr != "" || radiusStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		radius, errRadius := strconv.ParseFloat(radiusStr, 64)
		if errLat != nil || errLng != nil || errRadius != nil || radius <= 0 {
			apierrors.BadRequest(c, "Parâmetros de localização inválidos.")
			return
		}
		filter = &services.GeoFilter{Latitude: lat, Longitude: lng, RadiusKm: radius}
	}

	opportunities, err := h.opportunityService.List(filter)
	if err != nil {
		logInternal(c, err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToOpportunityDTOs(opportunities, true))
}

// Get returns a posting by id with the owner's public name attached.
func (h *OpportunityHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "ID de vaga inválido.")
		return
	}

	opportunity, err := h.opportunityService.Get(id)
	if err != nil {
		respondOpportunityError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOpportunityDTO(*opportunity, false))
}

// ListMine returns the postings created by the caller.
func (h *OpportunityHandler) ListMine(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	opportunities, err := h.opportunityService.ListByCreator(userID)
	if err != nil {
		logInternal(c, err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToOpportunityDTOs(opportunities, false))
}

// Create stores a posting owned by the caller.
func (h *OpportunityHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateRequest struct {
		Title          string   `json:"nome"`
		Description    string   `json:"descricao"`
		Location       string   `json:"local"`
		Schedule       string   `json:"data_hora"`
		SlotsAvailable int      `json:"vagas_disponiveis"`
		Category       string   `json:"categoria"`
		CEP            string   `json:"cep"`
		City           string   `json:"cidade"`
		State          string   `json:"estado"`
		Latitude       *float64 `json:"latitude"`
		Longitude      *float64 `json:"longitude"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Campos obrigatórios faltando.")
		return
	}

	opportunity, err := h.opportunityService.Create(services.CreateOpportunityInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		Schedule:       req.Schedule,
		SlotsAvailable: req.SlotsAvailable,
		Category:       req.Category,
		CEP:            req.CEP,
		City:           req.City,
		State:          req.State,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		CreatorID:      userID,
	})
	if err != nil {
		respondOpportunityError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOpportunityDTO(*opportunity, false))
}

// Update modifies a posting; only its owner may do so.
func (h *OpportunityHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "ID de vaga inválido.")
		return
	}

	type UpdateRequest struct {
		Title          *string  `json:"nome"`
		Description    *string  `json:"descricao"`
		Location       *string  `json:"local"`
		Schedule       *string  `json:"data_hora"`
		SlotsAvailable *int     `json:"vagas_disponiveis"`
		Category       *string  `json:"categoria"`
		CEP            *string  `json:"cep"`
		City           *string  `json:"cidade"`
		State          *string  `json:"estado"`
		Latitude       *float64 `json:"latitude"`
		Longitude      *float64 `json:"longitude"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Requisição inválida.")
		return
	}

	opportunity, err := h.opportunityService.Update(id, userID, services.UpdateOpportunityInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		Schedule:       req.Schedule,
		SlotsAvailable: req.SlotsAvailable,
		Category:       req.Category,
		CEP:            req.CEP,
		City:           req.City,
		State:          req.State,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	})
	if err != nil {
		respondOpportunityError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOpportunityDTO(*opportunity, false))
}

// Delete removes a posting; only its owner may do so.
func (h *OpportunityHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "ID de vaga inválido.")
		return
	}

	if err := h.opportunityService.Delete(id, userID); err != nil {
		respondOpportunityError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func respondOpportunityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOpportunityNotFound):
		apierrors.NotFound(c, "Vaga não encontrada")
	case errors.Is(err, services.ErrNotOpportunityOwner):
		apierrors.Forbidden(c, "Não autorizado")
	case errors.Is(err, services.ErrMissingOpportunityFields):
		apierrors.BadRequest(c, "Campos obrigatórios faltando.")
	case errors.Is(err, services.ErrInvalidSchedule):
		apierrors.BadRequest(c, "Formato de data inválido. Use DD/MM/AAAA HH:MM")
	default:
		logInternal(c, err)
		apierrors.InternalError(c, "")
	}
}
