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

// EnrollmentHandler coordinates enrollment ledger HTTP handlers.
type EnrollmentHandler struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService *services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
	}
}

// Enroll signs the caller up for a posting.
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type EnrollRequest struct {
		OpportunityID uint64 `json:"vagaId" binding:"required"`
	}

	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Campos obrigatórios faltando.")
		return
	}

	enrollment, err := h.enrollmentService.Enroll(userID, req.OpportunityID)
	if err != nil {
		respondEnrollmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEnrollmentDTO(*enrollment))
}

// Cancel removes the caller's enrollment for a posting. Cancelling twice is
// still a 200.
func (h *EnrollmentHandler) Cancel(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CancelRequest struct {
		OpportunityID uint64 `json:"vagaId" binding:"required"`
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Campos obrigatórios faltando.")
		return
	}

	if err := h.enrollmentService.Cancel(userID, req.OpportunityID); err != nil {
		respondEnrollmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inscrição cancelada."})
}

// ListMine returns the caller's enrollments with posting details.
func (h *EnrollmentHandler) ListMine(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	enrollments, err := h.enrollmentService.ListMine(userID)
	if err != nil {
		respondEnrollmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentDTOs(enrollments))
}

// ListForOpportunity returns a posting's enrollees with volunteer details.
func (h *EnrollmentHandler) ListForOpportunity(c *gin.Context) {
	opportunityID, ok := parseIDParam(c, "vagaId")
	if !ok {
		apierrors.BadRequest(c, "ID de vaga inválido.")
		return
	}

	enrollments, err := h.enrollmentService.ListForOpportunity(opportunityID)
	if err != nil {
		respondEnrollmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentDTOs(enrollments))
}

// ConfirmAttendance marks an enrollment confirmed; posting owner only.
func (h *EnrollmentHandler) ConfirmAttendance(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type ConfirmRequest struct {
		EnrollmentID uint64 `json:"inscricaoId" binding:"required"`
		Hours        int    `json:"horasVoluntariadas"`
	}

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Campos obrigatórios faltando.")
		return
	}

	enrollment, err := h.enrollmentService.ConfirmAttendance(req.EnrollmentID, userID, req.Hours)
	if err != nil {
		respondEnrollmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentDTO(*enrollment))
}

// Statistics aggregates the caller's confirmed volunteering.
func (h *EnrollmentHandler) Statistics(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	stats, err := h.enrollmentService.GetStatistics(userID)
	if err != nil {
		respondEnrollmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatisticsDTO(*stats))
}

func respondEnrollmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOpportunityNotFound):
		apierrors.NotFound(c, "Vaga não encontrada")
	case errors.Is(err, services.ErrAlreadyEnrolled):
		apierrors.BadRequest(c, "Você já está inscrito.")
	case errors.Is(err, services.ErrNoSlotsAvailable):
		apierrors.BadRequest(c, "Não há vagas disponíveis.")
	case errors.Is(err, services.ErrEnrollmentNotFound):
		apierrors.NotFound(c, "Inscrição não encontrada.")
	case errors.Is(err, services.ErrNotConfirmAllowed):
		apierrors.Forbidden(c, "Você não tem permissão para confirmar esta presença.")
	default:
		logInternal(c, err)
		apierrors.InternalError(c, "")
	}
}
