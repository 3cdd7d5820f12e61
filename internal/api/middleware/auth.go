package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lucasroqe/PDM-App-School/internal/model"
	"github.com/lucasroqe/PDM-App-School/pkg/jwt"
	"github.com/lucasroqe/PDM-App-School/pkg/redis"
	"github.com/lucasroqe/PDM-App-School/pkg/response"
)

// Context keys set by JWTAuth
const (
	IdentityKey = "identity"
	TokenIDKey  = "token_jti"
	TokenExpKey = "token_exp"
)

const (
	msgTokenRequired = "Token de acesso requerido"
	msgTokenInvalid  = "Token inválido ou expirado"
)

// JWTAuth access guard. A missing or malformed Authorization header is a
// 401; a token that fails verification, was revoked or carries an unknown
// role is a 403. rdb may be nil, in which case revocation is not checked.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			response.Unauthorized(c, msgTokenRequired)
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Forbidden(c, msgTokenInvalid)
			c.Abort()
			return
		}

		role, err := model.ParseRole(claims.Role)
		if err != nil {
			response.Forbidden(c, msgTokenInvalid)
			c.Abort()
			return
		}

		if rdb != nil && claims.ID != "" {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				// Redis outage degrades to signature-only checks
				logger.Warn("token blacklist unavailable", zap.Error(err))
			} else if revoked {
				response.Forbidden(c, msgTokenInvalid)
				c.Abort()
				return
			}
		}

		c.Set(IdentityKey, model.Identity{UserID: claims.UserID, Role: role})
		c.Set(TokenIDKey, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(TokenExpKey, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in roles
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool, len(roles))
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		allowed[r] = true
		names = append(names, string(r))
	}
	msg := "Acesso negado: requer perfil de " + strings.Join(names, " ou ")

	return func(c *gin.Context) {
		v, exists := c.Get(IdentityKey)
		identity, ok := v.(model.Identity)
		if !exists || !ok {
			response.Unauthorized(c, msgTokenRequired)
			c.Abort()
			return
		}

		if !allowed[identity.Role] {
			response.Forbidden(c, msg)
			c.Abort()
			return
		}

		c.Next()
	}
}
