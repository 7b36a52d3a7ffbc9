// Package sequence implements the array drills as generic slice helpers.
//
// Every function is a pure function: inputs are never modified and the result is
// always a freshly allocated slice (or map).
package sequence

import (
	"cmp"
	"slices"

	drillerrors "github.com/conduit-lang/drills/pkg/errors"
)

// Dedupe returns a new slice with duplicate elements removed.
// The order of first occurrence is preserved. Equality is Go ==, so for []any the
// int 2 and the string "2" stay distinct.
func Dedupe[T comparable](items []T) []T {
	seen := make(map[T]bool, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// DedupeAdjacent collapses every run of equal consecutive elements into one.
//
// Example:
//
//	DedupeAdjacent([]int{1, 2, 2, 3, 3, 3, 4, 4, 5, 2, 2}) => [1 2 3 4 5 2]
func DedupeAdjacent[T comparable](items []T) []T {
	result := make([]T, 0, len(items))
	for i, item := range items {
		if i == 0 || item != items[i-1] {
			result = append(result, item)
		}
	}
	return result
}

// Intersect returns the elements of a that also occur in b, keeping duplicates from a.
func Intersect[T comparable](a, b []T) []T {
	lookup := make(map[T]bool, len(b))
	for _, item := range b {
		lookup[item] = true
	}
	result := make([]T, 0)
	for _, item := range a {
		if lookup[item] {
			result = append(result, item)
		}
	}
	return result
}

// IntersectUnique is Intersect with the result de-duplicated.
func IntersectUnique[T comparable](a, b []T) []T {
	return Dedupe(Intersect(a, b))
}

// FlattenOneLevel concatenates the inner slices in order.
func FlattenOneLevel[T any](nested [][]T) []T {
	size := 0
	for _, inner := range nested {
		size += len(inner)
	}
	result := make([]T, 0, size)
	for _, inner := range nested {
		result = append(result, inner...)
	}
	return result
}

// DuplicateElements repeats every element twice in a row.
func DuplicateElements[T any](items []T) []T {
	result := make([]T, 0, 2*len(items))
	for _, item := range items {
		result = append(result, item, item)
	}
	return result
}

// SortSubsequences sorts every inner slice ascending. The outer order is preserved and
// the input is left untouched.
func SortSubsequences[T cmp.Ordered](nested [][]T) [][]T {
	result := make([][]T, len(nested))
	for i, inner := range nested {
		sorted := slices.Clone(inner)
		slices.Sort(sorted)
		result[i] = sorted
	}
	return result
}

// TruncateToShorterLength cuts both slices from the end to the length of the shorter one.
func TruncateToShorterLength[T any](a, b []T) ([]T, []T) {
	n := min(len(a), len(b))
	return slices.Clone(a[:n]), slices.Clone(b[:n])
}

// Bounds holds the extremes of a slice
type Bounds[T cmp.Ordered] struct {
	Min T `json:"min" yaml:"min"`
	Max T `json:"max" yaml:"max"`
}

// MinMax returns the smallest and largest elements in a single scan.
func MinMax[T cmp.Ordered](items []T) (Bounds[T], error) {
	if len(items) == 0 {
		return Bounds[T]{}, drillerrors.EmptyInput("sequence.MinMax")
	}
	b := Bounds[T]{Min: items[0], Max: items[0]}
	for _, item := range items[1:] {
		if item < b.Min {
			b.Min = item
		}
		if item > b.Max {
			b.Max = item
		}
	}
	return b, nil
}

// SecondLargestDistinct returns the second largest distinct value. ok is false when
// fewer than two distinct values exist.
func SecondLargestDistinct[T cmp.Ordered](items []T) (value T, ok bool) {
	unique := Dedupe(items)
	if len(unique) < 2 {
		return value, false
	}
	slices.SortFunc(unique, func(x, y T) int { return cmp.Compare(y, x) })
	return unique[1], true
}

// MaxRangeLength caps the number of values RangeInclusive will allocate.
const MaxRangeLength = 1 << 20

// RangeInclusive returns every integer from min to max. It is empty when min > max.
// A range of more than MaxRangeLength values is an InvalidArgument.
func RangeInclusive(min, max int) ([]int, error) {
	if min > max {
		return []int{}, nil
	}
	if span := uint64(max) - uint64(min); span >= MaxRangeLength {
		return nil, drillerrors.InvalidArgument("sequence.RangeInclusive", "range [%d, %d] holds more than %d values", min, max, MaxRangeLength)
	}
	result := make([]int, max-min+1)
	for i := range result {
		result[i] = min + i
	}
	return result, nil
}

// ToMappingByKey indexes records by key. A later record with the same key replaces
// the earlier one.
func ToMappingByKey[R any, K comparable](records []R, key func(R) K) map[K]R {
	result := make(map[K]R, len(records))
	for _, r := range records {
		result[key(r)] = r
	}
	return result
}

// RemoveEmptyStrings drops every element equal to the empty string.
//
// Example:
//
//	RemoveEmptyStrings([]any{1, "", 2, 3, "", 5}) => [1 2 3 5]
func RemoveEmptyStrings(items []any) []any {
	result := make([]any, 0, len(items))
	for _, item := range items {
		if s, isString := item.(string); isString && s == "" {
			continue
		}
		result = append(result, item)
	}
	return result
}

// NextCyclic returns the element following x, wrapping from the last element to the
// first. ok is false when x does not occur.
func NextCyclic[T comparable](items []T, x T) (next T, ok bool) {
	idx := slices.Index(items, x)
	if idx < 0 {
		return next, false
	}
	return items[(idx+1)%len(items)], true
}
