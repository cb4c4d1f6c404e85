package slug

import (
	"regexp"
	"strings"
)

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Make generates a URL-friendly slug from a title.
// Example: "SEO-Optimized E-Commerce (MVP)" -> "seo-optimized-e-commerce-mvp"
func Make(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonAlnumRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
