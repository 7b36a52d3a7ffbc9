// Package numeric implements the number drills: digit manipulation, divisors,
// primality and a random generator that never repeats itself back to back.
package numeric

import (
	"strconv"
	"strings"

	drillerrors "github.com/conduit-lang/drills/pkg/errors"
)

// digitsOf returns the decimal digits of |n|, most significant first.
func digitsOf(n int) string {
	s := strconv.Itoa(n)
	return strings.TrimPrefix(s, "-")
}

// DigitsAscending reports whether every digit of n is strictly greater than the one before it.
//
// Example:
//
//	DigitsAscending(12345) => true
//	DigitsAscending(12341) => false
func DigitsAscending(n int) bool {
	digits := digitsOf(n)
	for i := 1; i < len(digits); i++ {
		if digits[i] <= digits[i-1] {
			return false
		}
	}
	return true
}

// DigitSum returns the sum of the decimal digits of n.
func DigitSum(n int) int {
	sum := 0
	for _, d := range digitsOf(n) {
		sum += int(d - '0')
	}
	return sum
}

// StripZeroDigits removes every 0 digit from n. Stripping everything yields 0.
//
// Example:
//
//	StripZeroDigits(1012600) => 1126
func StripZeroDigits(n int) int {
	return keepDigits(n, func(d byte) bool { return d != '0' })
}

// StripEvenDigits removes every even digit from n, keeping the odd ones in order.
func StripEvenDigits(n int) int {
	return keepDigits(n, func(d byte) bool { return (d-'0')%2 == 1 })
}

func keepDigits(n int, keep func(byte) bool) int {
	var b strings.Builder
	digits := digitsOf(n)
	for i := 0; i < len(digits); i++ {
		if keep(digits[i]) {
			b.WriteByte(digits[i])
		}
	}
	if b.Len() == 0 {
		return 0
	}
	// A subset of the digits of an int always fits in an int.
	v, _ := strconv.Atoi(b.String())
	if n < 0 {
		return -v
	}
	return v
}

// AllContainDigit reports whether the decimal form of every number contains digit d.
// An empty slice is vacuously true.
func AllContainDigit(ns []int, d int) (bool, error) {
	if d < 0 || d > 9 {
		return false, drillerrors.InvalidArgument("numeric.AllContainDigit", "digit must be in 0..9, got %d", d).WithValue(d)
	}
	needle := strconv.Itoa(d)
	for _, n := range ns {
		if !strings.Contains(digitsOf(n), needle) {
			return false, nil
		}
	}
	return true, nil
}
