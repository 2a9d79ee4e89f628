package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"blog-backend/internal/infrastructure/storage"
	"blog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// MediaHandler serves covers under the URLs the asset host hands out.
type MediaHandler struct {
	store storage.AssetStore
}

func NewMediaHandler(store storage.AssetStore) *MediaHandler {
	return &MediaHandler{store: store}
}

// ServeAsset - GET /media/upload/*path
func (h *MediaHandler) ServeAsset(c *gin.Context) {
	publicID, ok := storage.PublicIDFromURL(c.Request.URL.Path)
	if !ok {
		response.NotFound(c, "Asset not found")
		return
	}

	body, info, err := h.store.Open(c.Request.Context(), publicID)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			response.NotFound(c, "Asset not found")
			return
		}
		_ = c.Error(err)
		return
	}
	defer body.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	if info.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	// public ids are never reused
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, body); err != nil {
		log.Warn().Err(err).Str("public_id", publicID).Msg("Asset stream interrupted")
	}
}
