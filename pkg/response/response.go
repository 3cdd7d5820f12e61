package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody error envelope understood by the mobile client
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageBody plain confirmation
type MessageBody struct {
	Message string `json:"message"`
}

// ── success ──

// OK 200 with data as the body
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 with data as the body
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 200 with {message}
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// ── errors ──

// Error generic error response
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// ErrorWithDetails error response carrying a diagnostic
func ErrorWithDetails(c *gin.Context, httpStatus int, message, details string) {
	c.JSON(httpStatus, ErrorBody{Error: message, Details: details})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Erro interno do servidor")
}

// InternalErrorWithDetails 500 with the storage layer's own diagnostic
func InternalErrorWithDetails(c *gin.Context, details string) {
	if details == "" {
		InternalError(c)
		return
	}
	ErrorWithDetails(c, http.StatusInternalServerError, "Erro interno do servidor", details)
}
