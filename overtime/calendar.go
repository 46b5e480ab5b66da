package overtime

import (
	"sort"
	"time"
)

// =============================================================================
// HOLIDAY SET - Operator-supplied extra holiday days
// =============================================================================

// HolidaySet is the set of custom holiday day-of-month numbers. It carries
// no month/year qualifier: a set containing 13 marks the 13th of every
// month the engine is run against. This mirrors how operators enter the
// days and is intentional, not a per-date override.
type HolidaySet map[int]bool

func NewHolidaySet(days ...int) HolidaySet {
	set := make(HolidaySet, len(days))
	for _, d := range days {
		if d >= 1 && d <= 31 {
			set[d] = true
		}
	}
	return set
}

func (h HolidaySet) Contains(day int) bool { return h[day] }

// Days returns the member day numbers in ascending order.
func (h HolidaySet) Days() []int {
	days := make([]int, 0, len(h))
	for d := range h {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// =============================================================================
// DAY CLASSIFIER
// =============================================================================

// IsHoliday reports whether the date counts as a holiday for OT purposes:
// Saturday, Sunday, or a day-of-month in the custom holiday set.
func IsHoliday(date time.Time, holidays HolidaySet) bool {
	wd := date.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return true
	}
	return holidays.Contains(date.Day())
}

// Classify maps a date onto its DayType.
func Classify(date time.Time, holidays HolidaySet) DayType {
	if IsHoliday(date, holidays) {
		return DayHoliday
	}
	return DayRegular
}

// =============================================================================
// TIME-OF-DAY HELPERS - Integer minute arithmetic, no float hours
// =============================================================================

// minuteOfDay returns minutes since midnight, ignoring seconds. OT window
// boundaries and checkout times compare at minute granularity.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// atMinuteOfDay places a minute-of-day boundary on the given date.
func atMinuteOfDay(date time.Time, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minute/60, minute%60, 0, 0, date.Location())
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
