package registry

import (
	"github.com/conduit-lang/drills/pkg/calendar"
)

var calendarFunctions = []FunctionDef{
	{
		Name:        "weekday",
		Signature:   "weekday(date: date?) -> string",
		Description: "Name of the day of the week (today when no date is given)",
		Example:     []string{"2025-01-18"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Calendar.weekday"
			if err := checkArity(op, args, 0, 1); err != nil {
				return nil, err
			}
			t, err := dateOrNow(env, op, args)
			if err != nil {
				return nil, err
			}
			return calendar.WeekdayName(t, calendar.NamesFor(env.Locale)), nil
		},
	},
	{
		Name:        "adjacent_weekdays",
		Signature:   "adjacent_weekdays(date: date?) -> {prev, curr, next}",
		Description: "Previous, current and next day names, wrapping around the week",
		Example:     []string{"2025-01-19"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Calendar.adjacent_weekdays"
			if err := checkArity(op, args, 0, 1); err != nil {
				return nil, err
			}
			t, err := dateOrNow(env, op, args)
			if err != nil {
				return nil, err
			}
			return calendar.AdjacentWeekdayNames(t, calendar.NamesFor(env.Locale)), nil
		},
	},
	{
		Name:        "seconds_to_units",
		Signature:   "seconds_to_units(seconds: int) -> {d, h, m, s}",
		Description: "Splits seconds into days, hours, minutes and seconds",
		Example:     []string{"1234567"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Calendar.seconds_to_units"
			if err := checkArity(op, args, 1, 1); err != nil {
				return nil, err
			}
			n, err := parseInt64(op, args[0])
			if err != nil {
				return nil, err
			}
			return calendar.SecondsToCalendarUnits(n)
		},
	},
	{
		Name:        "seconds_to_days",
		Signature:   "seconds_to_days(seconds: float) -> float",
		Description: "Converts seconds to a fractional number of days",
		Example:     []string{"90000"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Calendar.seconds_to_days"
			if err := checkArity(op, args, 1, 1); err != nil {
				return nil, err
			}
			f, err := parseFloat(op, args[0])
			if err != nil {
				return nil, err
			}
			return calendar.SecondsToDays(f), nil
		},
	},
	{
		Name:        "days_remaining",
		Signature:   "days_remaining(date: date?) -> int",
		Description: "Days left until the end of the month (this month when no date is given)",
		Example:     []string{"2025-02-10"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Calendar.days_remaining"
			if err := checkArity(op, args, 0, 1); err != nil {
				return nil, err
			}
			t, err := dateOrNow(env, op, args)
			if err != nil {
				return nil, err
			}
			return calendar.DaysRemainingInMonth(t), nil
		},
	},
	{
		Name:        "is_valid_date",
		Signature:   "is_valid_date(s: string) -> bool",
		Description: "Checks that YYYY-MM-DD names an existing date",
		Example:     []string{"2025-02-30"},
		Invoke:      stringFunc("Calendar.is_valid_date", calendar.IsValidCalendarDate),
	},
}
