package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPresignedURLExpiry is used when a caller passes a non-positive expiry.
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage is the object store holding progress photos. Clients upload and
// download directly against presigned URLs; the API never proxies bytes.
type FileStorage interface {
	// GeneratePresignedUploadURL returns a URL accepting a single PUT of objectKey.
	// The client must send the same Content-Type header.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	DeleteObject(ctx context.Context, objectKey string) error
}

// PhotoKeyPrefix returns the key prefix under which all photos of one
// physique log are stored.
func PhotoKeyPrefix(userID, physiqueLogID primitive.ObjectID) string {
	return path.Join("physique", userID.Hex(), physiqueLogID.Hex()) + "/"
}

// NewPhotoKey builds a fresh object key for a photo of the given content type,
// e.g. physique/<user>/<log>/<uuid>.jpeg.
func NewPhotoKey(userID, physiqueLogID primitive.ObjectID, contentType string) string {
	ext := "bin"
	if _, sub, ok := strings.Cut(strings.ToLower(contentType), "/"); ok && sub != "" {
		ext = sub
	}
	return PhotoKeyPrefix(userID, physiqueLogID) + fmt.Sprintf("%s.%s", uuid.NewString(), ext)
}
