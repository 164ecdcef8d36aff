package export

import "strings"

const maxSlugLen = 40

// Slugify derives a filesystem-safe directory name from request text:
// lowercase, runs of non-alphanumerics collapsed to single hyphens,
// bounded length. Empty input slugs to "speech".
func Slugify(text string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
		if b.Len() >= maxSlugLen {
			break
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "speech"
	}
	return slug
}
