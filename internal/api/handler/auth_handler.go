package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/lucasroqe/PDM-App-School/internal/dto"
	"github.com/lucasroqe/PDM-App-School/internal/service"
	"github.com/lucasroqe/PDM-App-School/pkg/response"
)

// AuthHandler authentication endpoints
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email e senha são obrigatórios")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		internalError(c, err)
		return
	}

	response.OK(c, result)
}

// Logout POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, exp := tokenSession(c)
	if err := h.authSvc.Logout(c.Request.Context(), jti, exp); err != nil {
		internalError(c, err)
		return
	}
	response.Message(c, "Logout realizado com sucesso")
}

// Me GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := MustGetIdentity(c)
	if !ok {
		return
	}

	user, err := h.authSvc.Me(c.Request.Context(), identity)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		internalError(c, err)
		return
	}

	response.OK(c, user)
}
