// internal/utils/slug.go
package utils

import "strings"

// Slugify maps free text to a URL-safe token: lowercase, every maximal
// run of characters outside [a-z0-9] collapsed to a single hyphen,
// leading and trailing hyphens trimmed. Total and idempotent; used for
// product, brand and category names as well as tags and collection
// labels so the same text always yields the same token.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	return b.String()
}

// SlugifyAll normalizes a list of labels, dropping entries that reduce
// to nothing and deduplicating the result.
func SlugifyAll(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	var out []string
	for _, label := range labels {
		slug := Slugify(label)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, slug)
	}
	return out
}
