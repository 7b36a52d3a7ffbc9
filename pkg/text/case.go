// Package text implements the string drills: case conversion, truncation,
// word sorting and initials.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// KebabToSnake converts kebab-case to snake_case by replacing every hyphen.
func KebabToSnake(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

// SnakeToCamel converts snake_case to camelCase. The first segment is kept as is and
// every later segment gets its first rune upper-cased. A later empty segment keeps its
// underscore, so "a__b" becomes "a_B" and CamelToSnake restores it.
//
// Example:
//
//	SnakeToCamel("convert_snake_case_to_camel_case") => "convertSnakeCaseToCamelCase"
func SnakeToCamel(s string) string {
	var result strings.Builder
	for i, word := range strings.Split(s, "_") {
		if i == 0 {
			result.WriteString(word)
			continue
		}
		if word == "" {
			result.WriteByte('_')
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		result.WriteRune(unicode.ToUpper(r))
		result.WriteString(word[size:])
	}
	return result.String()
}

// CamelToSnake converts camelCase to snake_case. A rune starts a new word when it is its
// own upper-case form and differs from its lower-case form; such a rune is replaced by
// "_" followed by its lower-case form. Everything else passes through, so a leading
// capital yields a leading underscore and acronyms are split letter by letter.
func CamelToSnake(s string) string {
	var result strings.Builder
	for _, r := range s {
		if isUpperBoundary(r) {
			result.WriteRune('_')
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

func isUpperBoundary(r rune) bool {
	return r == unicode.ToUpper(r) && r != unicode.ToLower(r)
}
