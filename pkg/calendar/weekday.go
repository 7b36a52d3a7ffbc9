// Package calendar implements the date and time drills.
package calendar

import (
	"time"

	"golang.org/x/text/language"
)

// WeekdayNames maps time.Weekday (0 = Sunday .. 6 = Saturday) to a display name.
type WeekdayNames [7]string

var (
	// English weekday names
	English = WeekdayNames{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	// Russian weekday names
	Russian = WeekdayNames{"Воскресенье", "Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"}
)

var weekdayMatcher = language.NewMatcher([]language.Tag{language.English, language.Russian})

// NamesFor returns the name table closest to tag, falling back to English.
func NamesFor(tag language.Tag) WeekdayNames {
	_, idx, conf := weekdayMatcher.Match(tag)
	if conf == language.No || idx == 0 {
		return English
	}
	return Russian
}

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// WeekdayName returns the name of t's day of the week.
func WeekdayName(t time.Time, names WeekdayNames) string {
	return names[t.Weekday()]
}

// Today returns the name of the current day of the week according to clock.
func Today(clock Clock, names WeekdayNames) string {
	return WeekdayName(clock.Now(), names)
}

// Adjacent holds the names of the previous, current and next days
type Adjacent struct {
	Prev string `json:"prev" yaml:"prev"`
	Curr string `json:"curr" yaml:"curr"`
	Next string `json:"next" yaml:"next"`
}

// AdjacentWeekdayNames returns the names around t's weekday. Sunday wraps back to
// Saturday and Saturday wraps forward to Sunday.
func AdjacentWeekdayNames(t time.Time, names WeekdayNames) Adjacent {
	day := int(t.Weekday())
	return Adjacent{
		Prev: names[(day+6)%7],
		Curr: names[day],
		Next: names[(day+1)%7],
	}
}
