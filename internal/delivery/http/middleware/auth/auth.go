package http_auth_middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/moviedrafter/core/internal/delivery/http/common"
)

// Middleware guards admin routes with a shared static token. An empty
// configured token disables the admin surface entirely.
type Middleware struct {
	token  string
	logger *slog.Logger
}

func New(token string) *Middleware {
	return &Middleware{
		token:  token,
		logger: slog.Default(),
	}
}

func (m *Middleware) AuthRequired() gin.HandlerFunc {
	const header = "X-admin-token"
	return func(ctx *gin.Context) {
		if m.token == "" {
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
				Message: "admin surface disabled",
			})
			ctx.Abort()
			return
		}

		t := ctx.GetHeader(header)
		if t == "" {
			m.logger.Warn("admin request without token header")
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "no " + header + " header",
			})
			ctx.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(t), []byte(m.token)) != 1 {
			m.logger.Warn("admin request with invalid token")
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid token",
			})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
