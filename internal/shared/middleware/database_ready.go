package middleware

import (
	"context"
	"net/http"

	"blog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DatabaseConnector connects on first use and reuses the connection after.
type DatabaseConnector interface {
	Connect(ctx context.Context) error
}

// DatabaseReady makes sure the database handle is connected before the
// request reaches a handler.
func DatabaseReady(db DatabaseConnector) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Connect(c.Request.Context()); err != nil {
			log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("Database connection failed")
			response.Error(c, http.StatusInternalServerError, "Database connection error")
			c.Abort()
			return
		}
		c.Next()
	}
}
