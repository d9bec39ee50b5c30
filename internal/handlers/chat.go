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

// ChatHandler coordinates per-posting chat HTTP handlers.
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Send appends a message to a posting's chat log.
func (h *ChatHandler) Send(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type SendRequest struct {
		Text          string `json:"mensagem"`
		OpportunityID uint64 `json:"vagaId" binding:"required"`
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Campos obrigatórios faltando.")
		return
	}

	message, err := h.chatService.Send(userID, req.OpportunityID, req.Text)
	if err != nil {
		respondChatError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToChatMessageDTO(*message))
}

// ListForOpportunity returns a posting's messages oldest-first with the
// author's public name.
func (h *ChatHandler) ListForOpportunity(c *gin.Context) {
	opportunityID, ok := parseIDParam(c, "vagaId")
	if !ok {
		apierrors.BadRequest(c, "ID de vaga inválido.")
		return
	}

	messages, err := h.chatService.ListForOpportunity(opportunityID)
	if err != nil {
		respondChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChatMessageDTOs(messages))
}

func respondChatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyMessage):
		apierrors.BadRequest(c, "Mensagem vazia.")
	case errors.Is(err, services.ErrOpportunityNotFound):
		apierrors.NotFound(c, "Vaga não encontrada")
	default:
		logInternal(c, err)
		apierrors.InternalError(c, "")
	}
}
