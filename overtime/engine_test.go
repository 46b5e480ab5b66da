package overtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlab/ot-engine/overtime"
)

func clockPair(name string, year int, month time.Month, day, inHour, inMin, outHour, outMin int) []overtime.ClockEvent {
	return []overtime.ClockEvent{
		punch(name, year, month, day, inHour, inMin),
		punch(name, year, month, day, outHour, outMin),
	}
}

// =============================================================================
// END-TO-END SCENARIOS
// =============================================================================

func TestCompute_RegularDayStandardStaff(t *testing.T) {
	// GIVEN: Standard staff, regular Tuesday (2025-11-04), in 08:05 out 20:10
	engine := overtime.NewDefaultEngine()
	events := clockPair(standardName, 2025, time.November, 4, 8, 5, 20, 10)

	// WHEN
	result := engine.Compute(time.November, 2025, nil, events)

	// THEN: 3 hours at 50 = 150
	require.Len(t, result.Summary, 1)
	assert.Equal(t, standardName, result.Summary[0].StaffName)
	assert.True(t, result.Summary[0].TotalPay.Equal(pay(150)))

	records := result.Details[standardName]
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].Hours)
	assert.Equal(t, overtime.DayRegular, records[0].DayType)
}

func TestCompute_SaturdaySpecialStaffCapped(t *testing.T) {
	// GIVEN: Special staff on Saturday 2025-11-01, in 08:00 out 18:30
	engine := overtime.NewDefaultEngine()
	events := clockPair(specialName, 2025, time.November, 1, 8, 0, 18, 30)

	result := engine.Compute(time.November, 2025, nil, events)

	// THEN: 10 hours, pay capped at 400
	require.Len(t, result.Summary, 1)
	assert.True(t, result.Summary[0].TotalPay.Equal(pay(400)))
	require.Len(t, result.Details[specialName], 1)
	assert.Equal(t, 10, result.Details[specialName][0].Hours)
}

func TestCompute_CustomHolidayShortSession_StaffExcluded(t *testing.T) {
	// GIVEN: The 13th configured as a custom holiday; standard staff works
	//        only 1.5 hours there (their only session of the month)
	engine := overtime.NewDefaultEngine()
	holidays := overtime.NewHolidaySet(13)
	events := clockPair(standardName, 2025, time.November, 13, 10, 0, 11, 30)

	result := engine.Compute(time.November, 2025, holidays, events)

	// THEN: floor(1.5) = 1 < 2 -> disqualified; zero total pay means the
	// staff member is absent from summary AND details
	assert.Empty(t, result.Summary)
	assert.NotContains(t, result.Details, standardName)
}

func TestCompute_MixedTiers_SummaryOrderedByThaiName(t *testing.T) {
	// GIVEN: Two special-tier and two standard-tier staff, each with a
	//        qualifying session in November 2025
	engine := overtime.NewDefaultEngine()
	var events []overtime.ClockEvent
	events = append(events, clockPair("นายวิทวัส แปงใจ", 2025, time.November, 1, 8, 0, 18, 30)...)   // Sat, special
	events = append(events, clockPair("นายปรพัฒน์ ขัตวงษ์", 2025, time.November, 4, 8, 0, 20, 0)...) // Tue, special
	events = append(events, clockPair("นายศักดิ์ดา มั่นคง", 2025, time.November, 4, 8, 0, 19, 0)...) // Tue, standard
	events = append(events, clockPair("นางสาวนิภา ขยันงาน", 2025, time.November, 2, 9, 0, 14, 0)...) // Sun, standard

	result := engine.Compute(time.November, 2025, nil, events)

	// THEN: Exactly the four staff with positive pay, each with one
	// detail list, and the summary ordered by Thai collation
	require.Len(t, result.Summary, 4)
	require.Len(t, result.Details, 4)

	names := make([]string, len(result.Summary))
	for i, s := range result.Summary {
		names[i] = s.StaffName
	}
	cmp := overtime.NameComparator()
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, cmp(names[i-1], names[i]), 0, "summary out of order at %d: %v", i, names)
	}
}

func TestCompute_DetailsOrderedByEffectiveStart(t *testing.T) {
	// GIVEN: Three qualifying sessions entered out of order
	engine := overtime.NewDefaultEngine()
	var events []overtime.ClockEvent
	events = append(events, clockPair(standardName, 2025, time.November, 18, 8, 0, 19, 0)...) // Tue
	events = append(events, clockPair(standardName, 2025, time.November, 1, 8, 0, 12, 0)...)  // Sat
	events = append(events, clockPair(standardName, 2025, time.November, 4, 8, 0, 19, 0)...)  // Tue

	result := engine.Compute(time.November, 2025, nil, events)

	records := result.Details[standardName]
	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].Date.Day())
	assert.Equal(t, 4, records[1].Date.Day())
	assert.Equal(t, 18, records[2].Date.Day())
	// Regular-day records carry the synthesized window start.
	assert.Equal(t, 16, records[1].Start.Hour())
	assert.Equal(t, 30, records[1].Start.Minute())
}

// =============================================================================
// PROPERTIES
// =============================================================================

func TestCompute_Idempotent(t *testing.T) {
	// Two invocations with identical inputs must be structurally
	// identical: no hidden randomness or map-order drift.
	engine := overtime.NewDefaultEngine()
	var events []overtime.ClockEvent
	events = append(events, clockPair(specialName, 2025, time.November, 1, 8, 0, 18, 30)...)
	events = append(events, clockPair(standardName, 2025, time.November, 4, 8, 0, 20, 0)...)
	events = append(events, clockPair("นางสาวนิภา ขยันงาน", 2025, time.November, 2, 9, 0, 15, 0)...)
	holidays := overtime.NewHolidaySet(13)

	first := engine.Compute(time.November, 2025, holidays, events)
	second := engine.Compute(time.November, 2025, holidays, events)

	assert.Equal(t, first, second)
}

func TestCompute_InvariantsHoldAcrossInputs(t *testing.T) {
	engine := overtime.NewDefaultEngine()
	var events []overtime.ClockEvent
	// A spread of sessions: holidays, regular days, short, long, malformed.
	events = append(events, clockPair(specialName, 2025, time.November, 1, 6, 0, 23, 0)...)
	events = append(events, clockPair(specialName, 2025, time.November, 3, 8, 0, 23, 59)...)
	events = append(events, clockPair(standardName, 2025, time.November, 2, 7, 0, 22, 0)...)
	events = append(events, clockPair(standardName, 2025, time.November, 5, 8, 0, 18, 29)...)
	events = append(events, overtime.ClockEvent{StaffName: "x"})
	events = append(events, punch("ย", 2025, time.November, 7, 9, 0)) // single punch

	result := engine.Compute(time.November, 2025, overtime.NewHolidaySet(5), events)

	for _, s := range result.Summary {
		assert.True(t, s.TotalPay.IsPositive(), "summary admits only strictly positive totals")

		sum := pay(0)
		for _, rec := range result.Details[s.StaffName] {
			assert.GreaterOrEqual(t, rec.Hours, 0)
			assert.False(t, rec.Pay.IsNegative())
			switch rec.DayType {
			case overtime.DayHoliday:
				assert.True(t, rec.Pay.LessThanOrEqual(pay(420)), "holiday pay bounded by tier cap")
			case overtime.DayRegular:
				assert.GreaterOrEqual(t, rec.Hours, 2)
				assert.LessOrEqual(t, rec.Hours, 4)
			}
			sum = sum.Add(rec.Pay)
		}
		assert.True(t, sum.Equal(s.TotalPay), "summary total must equal detail sum for %s", s.StaffName)
	}
}

func TestCompute_EmptyAndInvalidInput_WellFormedResult(t *testing.T) {
	engine := overtime.NewDefaultEngine()

	// Empty input.
	result := engine.Compute(time.November, 2025, nil, nil)
	assert.Empty(t, result.Summary)
	assert.Empty(t, result.Details)

	// Entirely invalid input.
	result = engine.Compute(time.November, 2025, nil, []overtime.ClockEvent{
		{},
		{StaffName: "a"},
		{At: time.Date(2025, time.November, 3, 8, 0, 0, 0, time.UTC)},
	})
	assert.Empty(t, result.Summary)
	assert.True(t, result.TotalPay().IsZero())
}

func TestCalculationResult_Totals(t *testing.T) {
	engine := overtime.NewDefaultEngine()
	var events []overtime.ClockEvent
	events = append(events, clockPair(specialName, 2025, time.November, 1, 8, 0, 18, 30)...) // 10h, 400
	events = append(events, clockPair(standardName, 2025, time.November, 4, 8, 0, 19, 30)...) // 3h, 150

	result := engine.Compute(time.November, 2025, nil, events)

	assert.True(t, result.TotalPay().Equal(pay(550)))
	assert.Equal(t, 13, result.TotalHours())
}
