package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drillerrors "github.com/conduit-lang/drills/pkg/errors"
)

func TestDivisorCount(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"one", 1, 1},
		{"prime", 13, 2},
		{"perfect square", 36, 9},
		{"composite", 12, 6},
		{"billion", 1000000000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DivisorCount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDivisorSum(t *testing.T) {
	got, err := DivisorSum(84)
	require.NoError(t, err)
	assert.Equal(t, 224, got)

	got, err = DivisorSum(36)
	require.NoError(t, err)
	assert.Equal(t, 91, got, "square root counted once")
}

func TestDivisorSumVariantsAgree(t *testing.T) {
	for n := 1; n <= 500; n++ {
		paired, err := DivisorSum(n)
		require.NoError(t, err)
		scanned, err := DivisorSumByScan(n)
		require.NoError(t, err)
		if paired != scanned {
			t.Fatalf("DivisorSum(%d) = %d, DivisorSumByScan = %d", n, paired, scanned)
		}
	}
}

func TestDivisors(t *testing.T) {
	got, err := Divisors(36)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 6, 9, 12, 18, 36}, got)

	got, err = Divisors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)
}

func TestDivisorsRejectNonPositive(t *testing.T) {
	for _, n := range []int{0, -5} {
		_, err := Divisors(n)
		assert.ErrorIs(t, err, drillerrors.ErrInvalidArgument)
		_, err = DivisorCount(n)
		assert.ErrorIs(t, err, drillerrors.ErrInvalidArgument)
		_, err = DivisorSum(n)
		assert.ErrorIs(t, err, drillerrors.ErrInvalidArgument)
		_, err = DivisorSumByScan(n)
		assert.ErrorIs(t, err, drillerrors.ErrInvalidArgument)
	}
}

func TestDivisorTable(t *testing.T) {
	got, err := DivisorTable([]int{6, 12, 15})
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{1, 2, 3, 6},
		{1, 2, 3, 4, 6, 12},
		{1, 3, 5, 15},
	}, got)

	_, err = DivisorTable([]int{6, 0})
	assert.ErrorIs(t, err, drillerrors.ErrInvalidArgument)
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		input int
		want  bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{10, false},
		{17, true},
		{25, false},
		{7919, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPrime(tt.input), "IsPrime(%d)", tt.input)
	}
}

func TestSquareAtMost(t *testing.T) {
	tests := []struct {
		i, n int
		want bool
	}{
		{1, 1, true},
		{2, 3, false},
		{2, 4, true},
		{6, 36, true},
		{7, 48, false},
		{3037000499, math.MaxInt, true},
		{3037000500, math.MaxInt, false},
		{4000000000, math.MaxInt, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, squareAtMost(tt.i, tt.n), "squareAtMost(%d, %d)", tt.i, tt.n)
	}
}
