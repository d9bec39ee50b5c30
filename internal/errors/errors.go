package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the JSON error body returned for every failed request. The
// message is human-readable and field-less; storage details never reach it.
type APIError struct {
	Error string `json:"error"`
}

func respond(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIError{Error: message})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Requisição inválida."
	}
	respond(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Token inválido"
	}
	respond(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Não autorizado"
	}
	respond(c, http.StatusForbidden, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Recurso não encontrado."
	}
	respond(c, http.StatusNotFound, message)
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Erro interno no servidor."
	}
	respond(c, http.StatusInternalServerError, message)
}
