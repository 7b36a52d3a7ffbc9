package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, true, "Function", "Result")
	table.AddRow("Numeric.is_prime", "true")
	table.AddRow("Calendar.weekday", "Суббота")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "Function          Result", lines[0])
	assert.Equal(t, strings.Repeat("─", 16)+"  "+strings.Repeat("─", 7), lines[1])
	assert.Equal(t, "Numeric.is_prime  true", lines[2])
	assert.Equal(t, "Calendar.weekday  Суббота", lines[3])
}

func TestTableEmptyHeaders(t *testing.T) {
	var buf bytes.Buffer
	NewTable(&buf, true).Render()
	assert.Empty(t, buf.String())
}

func TestPadRightCountsRunes(t *testing.T) {
	assert.Equal(t, "день ", padRight("день", 5))
	assert.Equal(t, "long", padRight("long", 2))
}
