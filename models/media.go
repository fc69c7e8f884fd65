package models

import (
	"fmt"
	"io"
	"math"
)

// MediaInput is the staged evidence for a submission: either an external URL
// or a local file, never both. The sealed interface makes the invalid
// "both present" state unrepresentable.
type MediaInput interface {
	mediaInput()
}

type MediaURL string

func (MediaURL) mediaInput() {}

type MediaFile struct {
	Name    string
	MIME    string
	Size    int64
	Content io.Reader
}

func (MediaFile) mediaInput() {}

// FormatFileSize renders a byte count for logs and UI labels, 1024-based.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	return fmt.Sprintf("%.2f %s", v, units[i])
}
