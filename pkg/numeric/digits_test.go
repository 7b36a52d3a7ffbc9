package numeric

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drillerrors "github.com/conduit-lang/drills/pkg/errors"
)

func TestDigitsAscending(t *testing.T) {
	tests := []struct {
		input int
		want  bool
	}{
		{12345, true},
		{12341, false},
		{1357, true},
		{9876, false},
		{7, true},
		{0, true},
		{112, false},
		{-123, true},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, DigitsAscending(tt.input))
		})
	}
}

// Cross-check against a direct pairwise comparison of the digit sequence.
func TestDigitsAscendingMatchesPairwise(t *testing.T) {
	for n := 1; n < 5000; n++ {
		s := strconv.Itoa(n)
		want := true
		for i := 1; i < len(s); i++ {
			if s[i] <= s[i-1] {
				want = false
			}
		}
		if got := DigitsAscending(n); got != want {
			t.Fatalf("DigitsAscending(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestDigitSum(t *testing.T) {
	assert.Equal(t, 20, DigitSum(1568))
	assert.Equal(t, 0, DigitSum(0))
	assert.Equal(t, 6, DigitSum(-123))
}

func TestStripZeroDigits(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"mixed", 1012600, 1126},
		{"no zeros", 123, 123},
		{"only zero", 0, 0},
		{"negative", -1020, -12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripZeroDigits(tt.input))
		})
	}
}

func TestStripEvenDigits(t *testing.T) {
	assert.Equal(t, 15735, StripEvenDigits(14567432465))
	assert.Equal(t, 0, StripEvenDigits(2468))
}

func TestAllContainDigit(t *testing.T) {
	ok, err := AllContainDigit([]int{3, 13, 23, 33, 43}, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = AllContainDigit([]int{3, 14}, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = AllContainDigit(nil, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = AllContainDigit([]int{1}, 10)
	assert.ErrorIs(t, err, drillerrors.ErrInvalidArgument)
}
