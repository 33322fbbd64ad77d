package optimizer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a target encoding. The zero value means "keep the source format".
type Format int

const (
	FormatKeep Format = iota
	FormatJPEG
	FormatPNG
	FormatWebP
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	case FormatWebP:
		return "webp"
	default:
		return "original"
	}
}

// ParseOutputFormat maps a user-supplied format name to a Format. The
// informal alias "jpg" folds into "jpeg"; anything outside the closed
// webp/png/jpeg set is an error.
func ParseOutputFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWebP, nil
	default:
		return FormatKeep, fmt.Errorf("unsupported output format %q (want webp, png, or jpg)", s)
	}
}

// formatFromName maps a registered decoder name to a Format. The same jpg
// alias rule applies in case a decoder ever reports the short name.
func formatFromName(name string) Format {
	switch strings.ToLower(name) {
	case "jpg", "jpeg":
		return FormatJPEG
	case "png":
		return FormatPNG
	case "webp":
		return FormatWebP
	default:
		return FormatKeep
	}
}

// IsCandidate reports whether a file name carries one of the supported input
// extensions, case-insensitive.
func IsCandidate(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case "webp", "png", "jpg", "jpeg":
		return true
	default:
		return false
	}
}
