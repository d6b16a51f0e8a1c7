// Package upload implements the signed-URL asset pipeline: ask the upload
// service for a write-once destination, PUT the raw bytes, and hand back
// the stable object URL.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"mrconsole/internal/cli/api"
	"mrconsole/internal/media"
)

// Signed-URL validity windows. The create wizard uses the short window;
// the edit dialog the long one.
const (
	CreateExpirationMinutes = 30
	EditExpirationMinutes   = 60
)

// Object-name prefixes used by the content flows.
const (
	PrefixOriginalVideo = "experiences/videos/original"
	PrefixMaskVideo     = "experiences/videos/mask"
	PrefixImage         = "experiences/images"
)

// Uploader drives the two-step upload against the asset-upload service.
type Uploader struct {
	client *api.UploadClient
}

func New(client *api.UploadClient) *Uploader {
	return &Uploader{client: client}
}

// ObjectName builds a globally-unique destination name:
// {prefix}/{unix-ms}-{random}.{original extension}.
func ObjectName(prefix, fileName string) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
	if ext != "" {
		name += "." + ext
	}
	if prefix == "" {
		return name
	}
	return strings.TrimRight(prefix, "/") + "/" + name
}

// NormalizeContentType forces all videos to the canonical video MIME type
// and all images to the canonical image type; anything else passes
// through, with a binary fallback for unknown files.
func NormalizeContentType(declared string) string {
	switch {
	case declared == "":
		return "application/octet-stream"
	case strings.HasPrefix(declared, "video/"):
		return "video/mp4"
	case strings.HasPrefix(declared, "image/"):
		return "image/jpeg"
	}
	return declared
}

// Upload pushes one local file and returns the stable public URL (the
// signed URL with its query string stripped). One failure aborts the
// enclosing submission; nothing is retried.
func (u *Uploader) Upload(ctx context.Context, filePath, prefix string, expirationMinutes int) (string, error) {
	base := filepath.Base(filePath)

	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", base, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", base, err)
	}

	contentType := NormalizeContentType(media.MediaTypeByName(base))

	signedURL, err := u.client.GenerateSignedURL(ctx, api.SignedURLRequest{
		ObjectName:        ObjectName(prefix, base),
		ContentType:       contentType,
		ExpirationMinutes: expirationMinutes,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", base, err)
	}

	if err := u.client.PutFile(ctx, signedURL, f, st.Size(), contentType); err != nil {
		return "", fmt.Errorf("uploading %s: %w", base, err)
	}

	publicURL, _, _ := strings.Cut(signedURL, "?")
	return publicURL, nil
}
