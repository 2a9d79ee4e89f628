package middleware

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared/apperror"
	"blog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorHandler turns the last error attached with c.Error into the JSON
// error envelope. Known shapes keep their message; anything else is a 500
// and only carries details when development is true.
func ErrorHandler(development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.StatusOf(err)
		if status != http.StatusInternalServerError {
			response.Error(c, status, err.Error())
			return
		}

		log.Error().
			Err(err).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")

		if development {
			response.ErrorWithStack(c, status, err.Error(), errorChain(err))
			return
		}
		response.InternalServerError(c, "Internal server error")
	}
}

// errorChain lists err and every error it wraps, outermost first.
func errorChain(err error) []string {
	var chain []string
	for err != nil {
		chain = append(chain, err.Error())
		err = errors.Unwrap(err)
	}
	return chain
}

// NotFound answers unknown routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	}
}
