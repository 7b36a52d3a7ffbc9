package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"with op", InvalidArgument("numeric.Divisors", "n must be positive, got %d", -3), "numeric.Divisors: n must be positive, got -3"},
		{"without op", InvalidArgument("", "bad"), "bad"},
		{"empty input", EmptyInput("sequence.MinMax"), "sequence.MinMax: input must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsInvalidArgument(t *testing.T) {
	_, parseErr := strconv.Atoi("x")

	errs := []error{
		InvalidArgument("op", "nope"),
		EmptyInput("op"),
		Unparsable("op", "x", parseErr),
		fmt.Errorf("wrapped: %w", EmptyInput("op")),
	}

	for _, err := range errs {
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}

	assert.False(t, stderrors.Is(stderrors.New("plain"), ErrInvalidArgument))
}

func TestIsMatchesByCode(t *testing.T) {
	err := EmptyInput("sequence.MinMax")

	assert.ErrorIs(t, err, &Error{Code: ErrCodeEmptyInput})
	assert.NotErrorIs(t, err, &Error{Code: ErrCodeUnparsableArgument})
}

func TestUnparsableUnwraps(t *testing.T) {
	_, parseErr := strconv.Atoi("abc")
	err := Unparsable("registry.int", "abc", parseErr)

	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Equal(t, "abc", err.Value)
	assert.Equal(t, ErrCodeUnparsableArgument, CodeOf(err))
}

func TestToJSON(t *testing.T) {
	err := InvalidArgument("text.Truncate", "maxLen must not be negative").WithValue(-1)

	out, jerr := err.ToJSON()
	require.NoError(t, jerr)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "ARG001", decoded["code"])
	assert.Equal(t, "argument", decoded["category"])
	assert.Equal(t, "text.Truncate", decoded["op"])
	assert.Equal(t, "-1", decoded["value"])
}

func TestCodeOfForeignError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), CodeOf(stderrors.New("plain")))
}
