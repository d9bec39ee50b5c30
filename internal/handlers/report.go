package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voluntai/voluntai-api/internal/dto"
	apierrors "github.com/voluntai/voluntai-api/internal/errors"
	"github.com/voluntai/voluntai-api/internal/middleware"
	"github.com/voluntai/voluntai-api/internal/services"
)

// ReportHandler serves organization metrics.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// OrganizationMetrics counts the caller's postings and the enrollments
// received across them.
func (h *ReportHandler) OrganizationMetrics(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	metrics, err := h.reportService.GetOrganizationMetrics(userID)
	if err != nil {
		logInternal(c, err)
		apierrors.InternalError(c, "Erro ao gerar métricas.")
		return
	}

	c.JSON(http.StatusOK, dto.OrganizationMetricsDTO{
		TotalPostings:    metrics.TotalPostings,
		TotalEnrollments: metrics.TotalEnrollments,
	})
}
