package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucasroqe/PDM-App-School/internal/api/middleware"
	"github.com/lucasroqe/PDM-App-School/internal/model"
	"github.com/lucasroqe/PDM-App-School/pkg/response"
)

// MustGetIdentity extracts the caller identity set by JWTAuth.
// On false a 401 has already been written and the caller should return.
func MustGetIdentity(c *gin.Context) (model.Identity, bool) {
	v, exists := c.Get(middleware.IdentityKey)
	identity, ok := v.(model.Identity)
	if !exists || !ok || identity.UserID <= 0 {
		response.Unauthorized(c, "Token de acesso requerido")
		return model.Identity{}, false
	}
	return identity, true
}

// tokenSession jti and expiry of the presented token
func tokenSession(c *gin.Context) (string, time.Time) {
	jti := c.GetString(middleware.TokenIDKey)
	exp, _ := c.Get(middleware.TokenExpKey)
	t, _ := exp.(time.Time)
	return jti, t
}

// parseIDParam positive int64 path parameter; writes a 400 on failure
func parseIDParam(c *gin.Context, name, msg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, msg)
		return 0, false
	}
	return id, true
}
