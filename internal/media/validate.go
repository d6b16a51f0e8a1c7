package media

import (
	"context"
	"errors"
	"fmt"
	"math"
	"mime"
	"path/filepath"
	"strings"
)

// Compatibility tolerances between a mask video and its original.
const (
	aspectRatioTolerance = 0.01 // 1% of the ratio value
	durationTolerance    = 0.1  // seconds
)

// Validation failure reasons. Each one carries a distinct user-facing
// message; callers match with errors.Is.
var (
	ErrUnsupportedFormat   = errors.New("unsupported video format")
	ErrAspectRatioMismatch = errors.New("mask video aspect ratio does not match original video")
	ErrDurationMismatch    = errors.New("mask video duration does not match original video")
	ErrMetadataRead        = errors.New("failed to read video metadata")
)

// Containers rejected by extension regardless of declared media type.
var unsupportedExtensions = map[string]string{
	".mov": "MOV files are not supported, convert to MP4 before uploading",
}

// Media types accepted for mask candidates.
var allowedMediaTypes = map[string]bool{
	"video/mp4":  true,
	"video/webm": true,
	"video/ogg":  true,
}

// MediaTypeByName resolves the declared media type of a file from its
// name, the CLI stand-in for the browser-reported file type.
func MediaTypeByName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp4", ".m4v":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".ogg", ".ogv":
		return "video/ogg"
	case ".mov":
		return "video/quicktime"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return mime.TypeByExtension(filepath.Ext(name))
}

// Prober yields video metadata; *Probe is the ffprobe-backed
// implementation.
type Prober interface {
	Inspect(ctx context.Context, path string) (VideoInfo, error)
}

// Validator checks that a candidate mask video is compatible with the
// original video it will carve transparency for.
type Validator struct {
	probe Prober
}

func NewValidator(probe Prober) *Validator {
	return &Validator{probe: probe}
}

// CheckFormat applies the container and media-type gates to a candidate
// file, before any metadata is probed.
func (v *Validator) CheckFormat(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if reason, bad := unsupportedExtensions[ext]; bad {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, reason)
	}
	if !allowedMediaTypes[MediaTypeByName(name)] {
		return fmt.Errorf("%w: use MP4, WebM or OGG", ErrUnsupportedFormat)
	}
	return nil
}

// ValidateMask probes both files and enforces the compatibility rules.
// The aspect-ratio check runs first; duration is only compared when the
// ratios already agree.
func (v *Validator) ValidateMask(ctx context.Context, originalPath, maskPath string) error {
	if err := v.CheckFormat(maskPath); err != nil {
		return err
	}

	original, err := v.probe.Inspect(ctx, originalPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataRead, err)
	}
	mask, err := v.probe.Inspect(ctx, maskPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataRead, err)
	}

	if math.Abs(original.AspectRatio()-mask.AspectRatio()) > aspectRatioTolerance {
		return fmt.Errorf("%w: original %.3f, mask %.3f", ErrAspectRatioMismatch, original.AspectRatio(), mask.AspectRatio())
	}
	if math.Abs(original.Duration-mask.Duration) > durationTolerance {
		return fmt.Errorf("%w: original %.2fs, mask %.2fs", ErrDurationMismatch, original.Duration, mask.Duration)
	}
	return nil
}
