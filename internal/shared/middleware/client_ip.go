package middleware

import (
	"blog-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

const ClientIPKey = "client_ip"

// ClientIP extracts the client IP address from the request and stores it
// in the gin context for the request logger.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ClientIPKey, utils.ExtractClientIP(c))
		c.Next()
	}
}
