package workspace

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/text/unicode/norm"
)

const fallbackSlug = "audio"

// Slug derives a lower-case, dash separated directory name from a file name.
// The extension is dropped and non-Latin scripts are transliterated, so
// "Привет мир.mp3" becomes "privet-mir". Names with nothing left fall back to "audio".
func Slug(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	// Decomposed (NFD) names, as macOS produces them, transliterate like their composed forms.
	stem = norm.NFC.String(stem)
	stem = strings.ReplaceAll(stem, "_", " ")

	s := slug.Make(stem)
	if s == "" {
		return fallbackSlug
	}
	return s
}
