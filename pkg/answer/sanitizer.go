package answer

import "strings"

// extraAllowed are the non-ASCII symbols the frontend renders fine; anything
// else outside printable ASCII is dropped.
var extraAllowed = map[rune]bool{
	'£': true,
	'€': true,
	'¥': true,
	'¢': true,
	'–': true,
	'’': true,
	'“': true,
	'”': true,
}

// Sanitize removes characters outside the printable-ASCII allowlist and the
// literal markdown emphasis markers, which the consuming UI does not render.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if r == '*' || r == '#' {
			continue
		}
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if r >= 0x20 && r <= 0x7E {
			b.WriteRune(r)
			continue
		}
		if extraAllowed[r] {
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}
