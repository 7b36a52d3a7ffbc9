package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockFormat(t *testing.T) {
	out := Block{
		Title:       "function not found",
		Subject:     "Numeric.is_prim",
		Problem:     "Cannot find function 'Numeric.is_prim'.",
		Suggestions: []string{"Numeric.is_prime"},
		Hints:       []string{"List functions: drills list"},
		NoColor:     true,
	}.Format()

	assert.Contains(t, out, "❌ FUNCTION NOT FOUND: Numeric.is_prim")
	assert.Contains(t, out, "   Cannot find function 'Numeric.is_prim'.")
	assert.Contains(t, out, "Did you mean: Numeric.is_prime?")
	assert.Contains(t, out, "→ List functions: drills list")
}

func TestBlockLevels(t *testing.T) {
	tests := []struct {
		level  Level
		symbol string
	}{
		{LevelError, "❌"},
		{LevelWarning, "⚠️"},
		{LevelInfo, "ℹ️"},
	}

	for _, tt := range tests {
		out := Block{Level: tt.level, Problem: "message", NoColor: true}.Format()
		assert.True(t, strings.HasPrefix(out, tt.symbol+" message"), "got %q", out)
	}
}

func TestBlockWithoutOptionalSections(t *testing.T) {
	out := Block{Problem: "only a problem", NoColor: true}.Format()
	assert.NotContains(t, out, "Did you mean")
	assert.NotContains(t, out, "→")
}

func TestBlockWrite(t *testing.T) {
	var buf bytes.Buffer
	Block{Problem: "written", NoColor: true}.Write(&buf)
	assert.Contains(t, buf.String(), "written")
}

func TestNamespaceNotFound(t *testing.T) {
	out := NamespaceNotFound("Numerc", []string{"Calendar", "Numeric", "Sequence", "Text"}, true).Format()

	assert.Contains(t, out, "NAMESPACE NOT FOUND: Numerc")
	assert.Contains(t, out, "Available namespaces: Calendar, Numeric, Sequence, Text")
	assert.Contains(t, out, "Did you mean: Numeric?")
}

func TestInvalidArgument(t *testing.T) {
	out := InvalidArgument("Text.truncate", "truncate(s: string, max_len: int) -> string", errors.New("bad length"), true).Format()

	assert.Contains(t, out, "INVALID ARGUMENT: Text.truncate")
	assert.Contains(t, out, "bad length")
	assert.Contains(t, out, "Usage: truncate(s: string, max_len: int) -> string")
	assert.Contains(t, out, "drills demo Text")
}

func TestConfigError(t *testing.T) {
	out := ConfigError(errors.New("locale is invalid"), true).Format()
	assert.Contains(t, out, "CONFIGURATION ERROR")
	assert.Contains(t, out, "locale is invalid")
}

func TestSuccess(t *testing.T) {
	assert.Equal(t, "✓ done", Success("done", true))
}
