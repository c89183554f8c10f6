package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stable machine-checkable error kinds carried alongside every failure.
const (
	CodeValidation         = "validation_error"
	CodeDuplicateEmail     = "duplicate_email"
	CodeDuplicateKey       = "duplicate_key"
	CodeInvalidCredentials = "invalid_credentials"
	CodeNotFound           = "not_found"
	CodeUnauthorized       = "unauthorized"
	CodeInternal           = "internal_error"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// SendDuplicateKey names the field that collided.
func SendDuplicateKey(c *gin.Context, message, field string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: message,
		Code:  CodeDuplicateKey,
		Field: field,
	})
}

func SendInternalError(c *gin.Context) {
	SendError(c, http.StatusInternalServerError, CodeInternal, "An unexpected error occurred")
}
