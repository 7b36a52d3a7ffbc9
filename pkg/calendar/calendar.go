package calendar

import (
	"strconv"
	"strings"
	"time"

	drillerrors "github.com/conduit-lang/drills/pkg/errors"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Units is a duration split into calendar units
type Units struct {
	Days    int64 `json:"d" yaml:"d"`
	Hours   int64 `json:"h" yaml:"h"`
	Minutes int64 `json:"m" yaml:"m"`
	Seconds int64 `json:"s" yaml:"s"`
}

// SecondsToCalendarUnits splits total seconds into days, hours, minutes and seconds by
// successive integer division. No rounding takes place.
//
// Example:
//
//	SecondsToCalendarUnits(1234567) => {Days: 14, Hours: 6, Minutes: 56, Seconds: 7}
func SecondsToCalendarUnits(total int64) (Units, error) {
	if total < 0 {
		return Units{}, drillerrors.InvalidArgument("calendar.SecondsToCalendarUnits", "seconds must not be negative, got %d", total).WithValue(total)
	}
	return Units{
		Days:    total / secondsPerDay,
		Hours:   total % secondsPerDay / secondsPerHour,
		Minutes: total % secondsPerHour / secondsPerMinute,
		Seconds: total % secondsPerMinute,
	}, nil
}

// SecondsToDays returns total seconds as a fractional number of days.
func SecondsToDays(total float64) float64 {
	return total / secondsPerDay
}

// DaysRemainingInMonth returns the number of days between t's day of month and the
// last day of that month.
func DaysRemainingInMonth(t time.Time) int {
	// day 0 of the next month normalizes to the last day of this one
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
	return last.Day() - t.Day()
}

// IsValidCalendarDate reports whether s is an existing date written as YYYY-MM-DD.
// Missing, non-numeric or zero components fail closed, as do overflowing dates such
// as 2025-02-30.
func IsValidCalendarDate(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return false
	}
	var fields [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n == 0 {
			return false
		}
		fields[i] = n
	}
	year, month, day := fields[0], fields[1], fields[2]

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return date.Year() == year && int(date.Month()) == month && date.Day() == day
}
