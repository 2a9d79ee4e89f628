package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrObjectNotFound is returned by Open when the key does not exist.
var ErrObjectNotFound = errors.New("asset not found")

// AssetStore is the asset host: uploads covers, streams them back and
// destroys them by public id.
type AssetStore interface {
	Upload(ctx context.Context, folder string, data []byte, contentType, ext string) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
	Open(ctx context.Context, publicID string) (io.ReadCloser, *ObjectInfo, error)
	Ping(ctx context.Context) error
}

// UploadResult describes a freshly uploaded asset
type UploadResult struct {
	URL      string
	PublicID string
	Format   string
	Bytes    int64
	Version  int64
}

// ObjectInfo is the metadata returned with a streamed asset
type ObjectInfo struct {
	ContentType string
	Size        int64
}

// ============ Public ID <-> URL ============

const uploadMarker = "/upload/"

var versionSegment = regexp.MustCompile(`^v\d+/`)

// PublicIDFromURL extracts the asset identifier from a hosted URL:
//
//	https://host/media/upload/v1699999999/blog-covers/abc.jpg -> blog-covers/abc
//
// Returns false when the URL has no "/upload/" marker.
func PublicIDFromURL(raw string) (string, bool) {
	idx := strings.Index(raw, uploadMarker)
	if idx < 0 {
		return "", false
	}
	rest := raw[idx+len(uploadMarker):]
	rest = versionSegment.ReplaceAllString(rest, "")
	if q := strings.IndexAny(rest, "?#"); q >= 0 {
		rest = rest[:q]
	}
	if dot := strings.LastIndex(rest, "."); dot > strings.LastIndex(rest, "/") {
		rest = rest[:dot]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

// BuildAssetURL builds <base>/media/upload/v<version>/<publicID>.<ext>
func BuildAssetURL(baseURL string, version int64, publicID, ext string) string {
	url := fmt.Sprintf("%s/media%sv%d/%s", strings.TrimRight(baseURL, "/"), uploadMarker, version, publicID)
	if ext != "" {
		url += "." + strings.TrimPrefix(ext, ".")
	}
	return url
}

// newAsset assigns the public id and URL of a new upload
func newAsset(baseURL, folder, ext string, size int64) *UploadResult {
	publicID := uuid.NewString()
	if folder = strings.Trim(folder, "/"); folder != "" {
		publicID = folder + "/" + publicID
	}
	version := time.Now().Unix()
	return &UploadResult{
		URL:      BuildAssetURL(baseURL, version, publicID, ext),
		PublicID: publicID,
		Format:   strings.TrimPrefix(ext, "."),
		Bytes:    size,
		Version:  version,
	}
}
