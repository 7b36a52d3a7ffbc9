package sequence

import (
	drillerrors "github.com/conduit-lang/drills/pkg/errors"
	"github.com/conduit-lang/drills/pkg/random"
)

// RandomElement returns a uniformly chosen element. A nil src selects a time-seeded source.
func RandomElement[T any](items []T, src random.Source) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, drillerrors.EmptyInput("sequence.RandomElement")
	}
	return items[random.OrDefault(src).IntN(len(items))], nil
}

// NoRepeatPicker returns random elements of a slice without ever returning an equal
// value twice in a row. It is not safe for concurrent use.
type NoRepeatPicker[T comparable] struct {
	items   []T
	src     random.Source
	last    T
	started bool
}

// NewNoRepeatPicker creates a picker over a copy of items. At least two distinct
// values are required. A nil src selects a time-seeded source.
func NewNoRepeatPicker[T comparable](items []T, src random.Source) (*NoRepeatPicker[T], error) {
	if len(items) == 0 {
		return nil, drillerrors.EmptyInput("sequence.NewNoRepeatPicker")
	}
	if len(Dedupe(items)) < 2 {
		return nil, drillerrors.InvalidArgument("sequence.NewNoRepeatPicker", "need at least two distinct values")
	}
	return &NoRepeatPicker[T]{items: append([]T(nil), items...), src: random.OrDefault(src)}, nil
}

// Next returns the next element.
func (p *NoRepeatPicker[T]) Next() T {
	v := p.items[p.src.IntN(len(p.items))]
	for p.started && v == p.last {
		v = p.items[p.src.IntN(len(p.items))]
	}
	p.last = v
	p.started = true
	return v
}
