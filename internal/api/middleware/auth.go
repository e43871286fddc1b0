package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/onmedicines/asaserver/pkg/jwt"
	"github.com/onmedicines/asaserver/pkg/redis"
	"github.com/onmedicines/asaserver/pkg/response"
)

// Context keys populated by JWTAuth.
const (
	CtxRollNumber = "rollNumber"
	CtxUsername   = "username"
	CtxRole       = "role"
	CtxTokenID    = "jti"
	CtxTokenExp   = "tokenExp"
)

// JWTAuth extracts and verifies the bearer token from
// "Authorization: Bearer <token>". Verification failures answer 401 with an
// errorAuthenticate body; everything downstream reports through the 400
// message channel. rdb may be nil, which disables revocation checks.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AuthError(c, "cannot be authorized!!")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.AuthError(c, "cannot be authorized!!")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.AuthError(c, err.Error())
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.AuthError(c, "token has been revoked")
				c.Abort()
				return
			}
			// A Redis error degrades to accepting the token; revocation is
			// best effort when the blacklist is unreachable.
		}

		c.Set(CtxRollNumber, claims.RollNumber)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(CtxTokenExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RequireRole rejects principals whose role differs from want. The message
// rides the 400 channel like every other domain failure; endpoints keep
// their original wording.
func RequireRole(want, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists || role.(string) != want {
			response.BadRequest(c, message)
			c.Abort()
			return
		}
		c.Next()
	}
}
