package helper

import (
	"strings"
	"unicode"
)

// Underscore converts a struct field name like "AuthorName" or "PostID"
// to its snake_case JSON key.
func Underscore(s string) string {
	runes := []rune(s)

	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
