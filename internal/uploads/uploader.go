// Package uploads stores project images in an object store and hands back
// stable public URLs for the rows that reference them.
package uploads

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize caps uploads at 5 MiB, matching the admin form contract.
const MaxImageSize = 5 << 20

// Uploader stores a binary object under the given filename and returns its
// publicly resolvable URL.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error)
}

// NewImageFilename generates a unique object name, preserving the original
// file extension so the served content type stays meaningful.
func NewImageFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.New().String() + ext
}

// ValidImageType reports whether the content type looks like an image.
func ValidImageType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// ErrTooLarge is returned before any network call when the upload exceeds
// MaxImageSize.
var ErrTooLarge = fmt.Errorf("image exceeds %d bytes", MaxImageSize)
