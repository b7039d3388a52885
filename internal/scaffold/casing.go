package scaffold

import (
	"strings"
	"unicode"
)

// Casings holds the canonical spellings derived from one raw name. All three
// fields come from the same segmentation of the raw input, so they stay
// mutually consistent: Camel is Pascal with the first character lower-cased,
// and Kebab is the lower-cased, hyphen-joined form of the same segments.
type Casings struct {
	Pascal string // e.g. "UserService"
	Camel  string // e.g. "userService"
	Kebab  string // e.g. "user-service"
}

// DeriveCasings computes the canonical casings for a raw component name.
// The transform is pure: it depends only on the input string.
func DeriveCasings(raw string) Casings {
	segments := splitSegments(raw)

	var pascal strings.Builder
	kebab := make([]string, 0, len(segments))
	for _, seg := range segments {
		pascal.WriteString(capitalize(seg))
		kebab = append(kebab, strings.ToLower(seg))
	}

	p := pascal.String()
	return Casings{
		Pascal: p,
		Camel:  lowerFirst(p),
		Kebab:  strings.Join(kebab, "-"),
	}
}

// splitSegments breaks a raw name on '-', '_', whitespace, and on
// lowercase-to-uppercase transitions ("userService" -> "user", "Service").
func splitSegments(raw string) []string {
	var segments []string
	var current []rune
	var prev rune

	flush := func() {
		if len(current) > 0 {
			segments = append(segments, string(current))
			current = current[:0]
		}
	}

	for _, r := range raw {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
		prev = r
	}
	flush()

	return segments
}

// capitalize upper-cases the first rune of a segment, leaving the rest as-is
// so acronym segments like "URL" survive intact.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
