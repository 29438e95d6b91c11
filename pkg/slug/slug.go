package slug

import (
	"regexp"
	"strings"
)

const maxSlugLength = 50

var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)
	multipleHyphensRegex = regexp.MustCompile(`-+`)
)

// Generate derives a filesystem-safe slug from a task title. Runs of
// non-alphanumeric characters collapse to single hyphens; an empty result
// falls back to "untitled".
func Generate(s string) string {
	slug := strings.ToLower(s)
	slug = nonAlphanumericRegex.ReplaceAllString(slug, "-")
	slug = multipleHyphensRegex.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "untitled"
	}

	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}

	return slug
}
