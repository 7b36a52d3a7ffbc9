package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drillerrors "github.com/conduit-lang/drills/pkg/errors"
	"github.com/conduit-lang/drills/pkg/random"
)

func TestRandomElement(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	src := random.New(11)

	for i := 0; i < 100; i++ {
		v, err := RandomElement(items, src)
		require.NoError(t, err)
		assert.Contains(t, items, v)
	}

	v, err := RandomElement(items, &random.Sequence{Values: []int{2}})
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = RandomElement([]int{}, src)
	assert.ErrorIs(t, err, drillerrors.ErrInvalidArgument)
}

func TestNoRepeatPicker(t *testing.T) {
	picker, err := NewNoRepeatPicker([]string{"a", "b", "a", "c"}, random.New(5))
	require.NoError(t, err)

	prev := ""
	for i := 0; i < 1000; i++ {
		v := picker.Next()
		require.NotEqual(t, prev, v, "repeat at call %d", i)
		prev = v
	}
}

func TestNoRepeatPickerComparesValuesNotPositions(t *testing.T) {
	// index 0 and 1 hold the same value, so drawing 1 after 0 must redraw
	src := &random.Sequence{Values: []int{0, 1, 2}}
	picker, err := NewNoRepeatPicker([]int{7, 7, 9}, src)
	require.NoError(t, err)

	assert.Equal(t, 7, picker.Next())
	assert.Equal(t, 9, picker.Next())
	assert.Equal(t, 3, src.Calls())
}

func TestNewNoRepeatPickerValidation(t *testing.T) {
	_, err := NewNoRepeatPicker([]int{}, nil)
	assert.Equal(t, drillerrors.ErrCodeEmptyInput, drillerrors.CodeOf(err))

	_, err = NewNoRepeatPicker([]int{4, 4, 4}, nil)
	assert.ErrorIs(t, err, drillerrors.ErrInvalidArgument)
}

func TestNilSourceFallsBackToSeededSource(t *testing.T) {
	items := []string{"a", "b", "c"}

	v, err := RandomElement(items, nil)
	require.NoError(t, err)
	assert.Contains(t, items, v)

	picker, err := NewNoRepeatPicker(items, nil)
	require.NoError(t, err)
	assert.NotEqual(t, picker.Next(), picker.Next())
}
