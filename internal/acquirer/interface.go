package acquirer

import (
	"context"
	"strings"
)

// Acquirer turns a URL or local path into a single local audio file.
type Acquirer interface {
	// Acquire returns the local file path and its display name. URLs are
	// downloaded into destDir; local paths are only resolved.
	Acquire(ctx context.Context, input, destDir string) (path string, displayName string, err error)
}

// Downloader is the remote media engine. It downloads url into destDir and
// returns the file name it expected to produce before any post-processing.
type Downloader interface {
	Download(ctx context.Context, url, destDir string, opts map[string]any) (expectedName string, err error)
}

// IsURL reports whether input should be downloaded rather than read from disk.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}
