package http_access_middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/moviedrafter/core/internal/delivery/http/common"
)

// ReadOnlyBadGatewayMiddleware rejects every non-GET request when the
// instance runs in RO mode. Replica deployments only serve GET traffic,
// such as pick listings and curated pool reads; everything else, the
// analysis and pick POSTs included, belongs to the single RW instance.
func ReadOnlyBadGatewayMiddleware(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != "RO" {
			c.Next()
			return
		}

		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		c.JSON(http.StatusBadGateway, http_common.ErrorResponse{
			Message: "write operations not allowed on read-only instance",
		})
		c.Abort()
	}
}
