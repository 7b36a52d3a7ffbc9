package numeric

import (
	"math"

	drillerrors "github.com/conduit-lang/drills/pkg/errors"
	"github.com/conduit-lang/drills/pkg/random"
)

// NoRepeat draws uniform integers from [0, bound) and never returns the same value
// on two consecutive calls. The previous value belongs to this instance only.
// A NoRepeat is not safe for concurrent use.
type NoRepeat struct {
	bound   int
	src     random.Source
	last    int
	started bool
}

// NewNoRepeat creates a generator over [0, bound). The bound must be at least 2,
// otherwise no alternative value exists. A nil src selects a time-seeded source.
func NewNoRepeat(bound int, src random.Source) (*NoRepeat, error) {
	if bound < 2 {
		return nil, drillerrors.InvalidArgument("numeric.NewNoRepeat", "bound must be at least 2, got %d", bound).WithValue(bound)
	}
	return &NoRepeat{bound: bound, src: random.OrDefault(src)}, nil
}

// Next returns the next value. The first call has no predecessor constraint.
func (g *NoRepeat) Next() int {
	v := g.src.IntN(g.bound)
	for g.started && v == g.last {
		v = g.src.IntN(g.bound)
	}
	g.last = v
	g.started = true
	return v
}

// RandomInts returns count uniform draws from the inclusive range [min, max].
// The range may hold at most math.MaxInt values. A nil src selects a time-seeded source.
func RandomInts(count, min, max int, src random.Source) ([]int, error) {
	if count < 0 {
		return nil, drillerrors.InvalidArgument("numeric.RandomInts", "count must not be negative, got %d", count).WithValue(count)
	}
	if min > max {
		return nil, drillerrors.InvalidArgument("numeric.RandomInts", "min %d is greater than max %d", min, max)
	}
	span := uint64(max) - uint64(min)
	if span >= math.MaxInt {
		return nil, drillerrors.InvalidArgument("numeric.RandomInts", "range [%d, %d] holds more than %d values", min, max, math.MaxInt)
	}
	src = random.OrDefault(src)
	result := make([]int, count)
	for i := range result {
		result[i] = src.IntN(int(span)+1) + min
	}
	return result, nil
}
