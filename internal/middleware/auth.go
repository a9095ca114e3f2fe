package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/campuspulse/internal/auth"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/model"
	"github.com/rs/zerolog/log"
)

const (
	claimsKey = "auth_claims"
	// SessionCookie is accepted in place of the Authorization header.
	SessionCookie = "session"
)

func tokenFromRequest(ctx *gin.Context) string {
	if h := ctx.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := ctx.Cookie(SessionCookie); err == nil {
		return c
	}
	return ""
}

// Authenticate rejects requests without a valid token and stores the claims on the context.
func Authenticate(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tok := tokenFromRequest(ctx)
		if tok == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		claims, err := tokens.Parse(tok)
		if err != nil {
			log.Debug().Err(err).Str("path", ctx.FullPath()).Msg("Rejected token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// RequireRole must run after Authenticate.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := ClaimsFrom(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				ctx.Next()
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient role"})
	}
}

func ClaimsFrom(ctx *gin.Context) (*auth.Claims, bool) {
	v, ok := ctx.Get(claimsKey)
	if !ok {
		return nil, false
	}
	c, ok := v.(*auth.Claims)
	return c, ok
}

// SetClaims is used by tests and handlers that authenticate out of band.
func SetClaims(ctx *gin.Context, c *auth.Claims) {
	ctx.Set(claimsKey, c)
}
