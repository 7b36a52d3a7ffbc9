package text

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	drillerrors "github.com/conduit-lang/drills/pkg/errors"
	"github.com/conduit-lang/drills/pkg/random"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Truncate returns the first maxLen runes of s, or s itself when it is not longer.
func Truncate(s string, maxLen int) (string, error) {
	if maxLen < 0 {
		return "", drillerrors.InvalidArgument("text.Truncate", "maxLen must not be negative, got %d", maxLen).WithValue(maxLen)
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s, nil
	}
	runes := []rune(s)
	return string(runes[:maxLen]), nil
}

// TruncateAny is Truncate for dynamically typed input; anything but a string is rejected.
func TruncateAny(v any, maxLen int) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", drillerrors.InvalidArgument("text.Truncate", "text must be a string, got %T", v).WithValue(v)
	}
	return Truncate(s, maxLen)
}

// SortWordsAlphabetically splits s on single spaces, orders the words with the collation
// rules of tag and joins them back with single spaces.
//
// Example:
//
//	SortWordsAlphabetically("яблоко груша банан", language.Russian) => "банан груша яблоко"
func SortWordsAlphabetically(s string, tag language.Tag) string {
	words := strings.Split(s, " ")
	collate.New(tag).SortStrings(words)
	return strings.Join(words, " ")
}

// SortWordsByCodepoint is the locale-independent variant ordering words by Unicode code point.
func SortWordsByCodepoint(s string) string {
	words := strings.Split(s, " ")
	sort.Strings(words)
	return strings.Join(words, " ")
}

// Initials returns the upper-cased first rune of every whitespace separated word.
//
// Example:
//
//	Initials("portable network graphics") => "PNG"
func Initials(s string) string {
	var result strings.Builder
	for _, word := range strings.Fields(s) {
		r, _ := utf8.DecodeRuneInString(word)
		result.WriteRune(unicode.ToUpper(r))
	}
	return result.String()
}

// IsDigitString reports whether s is non-empty and made of ASCII digits only.
func IsDigitString(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsFraction reports whether s has the form "numerator/denominator" with both parts digit strings.
func IsFraction(s string) bool {
	parts := strings.Split(s, "/")
	return len(parts) == 2 && IsDigitString(parts[0]) && IsDigitString(parts[1])
}

// RandomAlphabeticString returns length independent uniform draws from a..z.
// A nil src selects a time-seeded source.
func RandomAlphabeticString(length int, src random.Source) (string, error) {
	letters, err := RandomLetters(length, src)
	if err != nil {
		return "", err
	}
	return strings.Join(letters, ""), nil
}

// RandomLetters is RandomAlphabeticString returning one string per letter.
func RandomLetters(length int, src random.Source) ([]string, error) {
	if length < 0 {
		return nil, drillerrors.InvalidArgument("text.RandomLetters", "length must not be negative, got %d", length).WithValue(length)
	}
	src = random.OrDefault(src)
	letters := make([]string, length)
	for i := range letters {
		idx := src.IntN(len(alphabet))
		letters[i] = alphabet[idx : idx+1]
	}
	return letters, nil
}
