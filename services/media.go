package services

import (
	"fmt"
	"strings"

	"MilestoneTracker/models"
)

// Size ceilings, 1024-based.
const (
	MaxImageSize = 5 * 1024 * 1024
	MaxVideoSize = 50 * 1024 * 1024
)

// acceptedMediaTypes is the closed list of MIME types a parent may upload.
var acceptedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"video/mp4":  true,
	"video/avi":  true,
	"video/mov":  true,
}

// ValidateMedia gates a candidate file before anything is staged. The
// returned error is always a *ValidationError; nil means accept.
func ValidateMedia(mimeType string, size int64) error {
	if !acceptedMediaTypes[mimeType] {
		return &ValidationError{
			Field:  "media",
			Reason: "unsupported type: please select a valid image (JPEG, PNG, GIF) or video (MP4, AVI, MOV) file",
		}
	}

	max := int64(MaxVideoSize)
	label := "50MB"
	if strings.HasPrefix(mimeType, "image/") {
		max = MaxImageSize
		label = "5MB"
	}
	if size > max {
		return &ValidationError{
			Field:  "media",
			Reason: fmt.Sprintf("file too large: size must be at most %s", label),
		}
	}
	return nil
}

// ValidateMediaFile is the staged-file convenience wrapper.
func ValidateMediaFile(file models.MediaFile) error {
	return ValidateMedia(file.MIME, file.Size)
}
