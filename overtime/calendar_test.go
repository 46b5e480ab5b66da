package overtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avlab/ot-engine/overtime"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestIsHoliday_Weekends(t *testing.T) {
	none := overtime.NewHolidaySet()

	// 2025-11-01 is a Saturday, 2025-11-02 a Sunday, 2025-11-03 a Monday.
	assert.True(t, overtime.IsHoliday(date(2025, time.November, 1), none))
	assert.True(t, overtime.IsHoliday(date(2025, time.November, 2), none))
	assert.False(t, overtime.IsHoliday(date(2025, time.November, 3), none))
}

func TestIsHoliday_CustomDayOfMonth(t *testing.T) {
	holidays := overtime.NewHolidaySet(13)

	// 2025-11-13 is a Thursday; the custom set makes it a holiday.
	assert.True(t, overtime.IsHoliday(date(2025, time.November, 13), holidays))

	// No month qualifier: the 13th of ANY month matches. The simplification
	// is intentional; operators enter bare day numbers.
	assert.True(t, overtime.IsHoliday(date(2025, time.June, 13), holidays))

	assert.False(t, overtime.IsHoliday(date(2025, time.November, 14), holidays))
}

func TestNewHolidaySet_DropsOutOfRangeDays(t *testing.T) {
	set := overtime.NewHolidaySet(0, 5, 13, 32, -1)
	assert.Equal(t, []int{5, 13}, set.Days())
}

func TestClassify(t *testing.T) {
	holidays := overtime.NewHolidaySet(13)

	assert.Equal(t, overtime.DayHoliday, overtime.Classify(date(2025, time.November, 13), holidays))
	assert.Equal(t, overtime.DayRegular, overtime.Classify(date(2025, time.November, 12), holidays))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, overtime.DaysInMonth(time.November, 2025))
	assert.Equal(t, 31, overtime.DaysInMonth(time.December, 2025))
	assert.Equal(t, 29, overtime.DaysInMonth(time.February, 2024))
	assert.Equal(t, 28, overtime.DaysInMonth(time.February, 2025))
}
