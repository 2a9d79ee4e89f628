package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"blog-backend/internal/config"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/internal/shared/apperror"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const CoverUploadKey = "cover_upload"

// CoverUploader is the upload half of the asset host.
type CoverUploader interface {
	Upload(ctx context.Context, folder string, data []byte, contentType, ext string) (*storage.UploadResult, error)
}

type coverType struct {
	ext    string
	format string // image.Decode format name
}

var allowedCoverTypes = map[string]coverType{
	"image/jpeg": {ext: "jpg", format: "jpeg"},
	"image/png":  {ext: "png", format: "png"},
	"image/gif":  {ext: "gif", format: "gif"},
	"image/webp": {ext: "webp", format: "webp"},
}

const msgInvalidCoverType = "Invalid file type. Only JPEG, PNG, GIF and WEBP images are allowed."

// CoverUpload handles the optional cover file of multipart requests: size
// and type checks, normalisation, then upload to the asset host. The result
// is stored under CoverUploadKey. Requests without the file pass through.
func CoverUpload(uploader CoverUploader, processor *storage.ImageProcessor, cfg config.UploadConfig, folder string) gin.HandlerFunc {
	tooLarge := fmt.Sprintf("File too large. Maximum size is %dMB.", cfg.MaxBytes/(1024*1024))

	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.Next()
			return
		}

		// room for the text fields on top of the file
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxBytes+1<<20)

		fileHeader, err := c.FormFile(cfg.FieldName)
		if err != nil {
			var maxErr *http.MaxBytesError
			switch {
			case errors.Is(err, http.ErrMissingFile):
				c.Next()
			case errors.As(err, &maxErr), strings.Contains(err.Error(), "request body too large"):
				abortWithError(c, apperror.NewUpload(tooLarge, err))
			default:
				abortWithError(c, apperror.NewUpload("Upload error: "+err.Error(), err))
			}
			return
		}

		if fileHeader.Size > cfg.MaxBytes {
			abortWithError(c, apperror.NewUpload(tooLarge, nil))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			abortWithError(c, apperror.NewUpload("Upload error: "+err.Error(), err))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, cfg.MaxBytes+1))
		if err != nil {
			abortWithError(c, apperror.NewUpload("Upload error: "+err.Error(), err))
			return
		}
		if int64(len(data)) > cfg.MaxBytes {
			abortWithError(c, apperror.NewUpload(tooLarge, nil))
			return
		}

		// trust the content, not the client's Content-Type
		detected := mimetype.Detect(data)
		kind, ok := allowedCoverTypes[detected.String()]
		if !ok {
			abortWithError(c, apperror.NewUpload(msgInvalidCoverType, nil))
			return
		}

		data, err = processor.Normalize(data, kind.format)
		if err != nil {
			abortWithError(c, apperror.NewUpload(msgInvalidCoverType, err))
			return
		}

		result, err := uploader.Upload(c.Request.Context(), folder, data, detected.String(), kind.ext)
		if err != nil {
			// asset host failure on the primary path is not the client's fault
			abortWithError(c, fmt.Errorf("upload cover: %w", err))
			return
		}

		log.Debug().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("public_id", result.PublicID).
			Int64("bytes", result.Bytes).
			Msg("Cover uploaded")

		c.Set(CoverUploadKey, result)
		c.Next()
	}
}

// UploadedCover returns the cover uploaded by CoverUpload in this request.
func UploadedCover(c *gin.Context) (*storage.UploadResult, bool) {
	value, ok := c.Get(CoverUploadKey)
	if !ok {
		return nil, false
	}
	result, ok := value.(*storage.UploadResult)
	return result, ok && result != nil
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
