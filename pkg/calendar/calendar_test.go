package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drillerrors "github.com/conduit-lang/drills/pkg/errors"
)

func TestSecondsToCalendarUnits(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  Units
	}{
		{"sample", 1234567, Units{Days: 14, Hours: 6, Minutes: 56, Seconds: 7}},
		{"zero", 0, Units{}},
		{"one day", 86400, Units{Days: 1}},
		{"just under a day", 86399, Units{Hours: 23, Minutes: 59, Seconds: 59}},
		{"twelve days", 1076399, Units{Days: 12, Hours: 10, Minutes: 59, Seconds: 59}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SecondsToCalendarUnits(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := SecondsToCalendarUnits(-1)
	assert.ErrorIs(t, err, drillerrors.ErrInvalidArgument)
}

func TestSecondsToDays(t *testing.T) {
	assert.Equal(t, 1.0, SecondsToDays(86400))
	assert.Equal(t, 2.0, SecondsToDays(172800))
	assert.InDelta(t, 1.0416666, SecondsToDays(90000), 1e-6)
}

func TestDaysRemainingInMonth(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want int
	}{
		{"mid january", date(2025, time.January, 18), 13},
		{"last day", date(2025, time.January, 31), 0},
		{"leap february", date(2024, time.February, 10), 19},
		{"plain february", date(2025, time.February, 10), 18},
		{"december", date(2026, time.December, 1), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysRemainingInMonth(tt.day))
		})
	}
}

func TestIsValidCalendarDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2025-01-18", true},
		{"2024-02-29", true},
		{"2025-02-29", false},
		{"2025-02-30", false},
		{"abcd-12-15", false},
		{"2025-13-01", false},
		{"2025-00-10", false},
		{"2025-01-00", false},
		{"2025-01", false},
		{"2025--01", false},
		{"", false},
		{"2025-01-18-01", false},
		{"2025-04-31", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCalendarDate(tt.input))
		})
	}
}
