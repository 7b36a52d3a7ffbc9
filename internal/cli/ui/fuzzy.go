package ui

import (
	"sort"
	"strings"
)

const (
	// DefaultMaxDistance is the default maximum edit distance to consider
	DefaultMaxDistance = 3
	// DefaultMaxSuggestions is the default maximum number of suggestions
	DefaultMaxSuggestions = 3
)

// SuggestOptions configures Suggest
type SuggestOptions struct {
	MaxDistance    int  // Maximum edit distance to consider (default: 3)
	MaxSuggestions int  // Maximum number of suggestions (default: 3)
	CaseSensitive  bool // Whether matching is case-sensitive (default: false)
}

type candidate struct {
	value    string
	distance int
}

// Suggest returns the candidates closest to target by edit distance, closest first.
// Ties keep the candidates' original order.
//
// Example:
//
//	Suggest("Numeric.is_prim", registry.QualifiedNames(), nil)
//	// Returns: ["Numeric.is_prime"]
func Suggest(target string, candidates []string, opts *SuggestOptions) []string {
	o := SuggestOptions{MaxDistance: DefaultMaxDistance, MaxSuggestions: DefaultMaxSuggestions}
	if opts != nil {
		o.CaseSensitive = opts.CaseSensitive
		if opts.MaxDistance > 0 {
			o.MaxDistance = opts.MaxDistance
		}
		if opts.MaxSuggestions > 0 {
			o.MaxSuggestions = opts.MaxSuggestions
		}
	}

	normalize := func(s string) string {
		if o.CaseSensitive {
			return s
		}
		return strings.ToLower(s)
	}

	var matches []candidate
	for _, c := range candidates {
		if d := EditDistance(normalize(target), normalize(c)); d <= o.MaxDistance {
			matches = append(matches, candidate{value: c, distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	result := make([]string, 0, o.MaxSuggestions)
	for i := 0; i < len(matches) && i < o.MaxSuggestions; i++ {
		result = append(result, matches[i].value)
	}
	return result
}

// EditDistance returns the Levenshtein distance between a and b, counted in runes.
//
// Example:
//
//	EditDistance("kitten", "sitting") // Returns: 3
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// two rolling rows are enough
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
