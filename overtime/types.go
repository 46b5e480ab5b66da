/*
Package overtime provides the core OT accrual engine.

PURPOSE:
  This package turns raw attendance clock events into qualified overtime
  sessions and payable amounts for a selected calendar month. It owns all
  of the decision logic: grouping timestamps into daily work sessions,
  classifying days as holiday or regular, applying tier- and day-type
  specific window/rate/cap rules, and folding everything into per-staff
  and month-level summaries.

KEY CONCEPTS IN THIS FILE (types.go):
  - ClockEvent: A raw attendance punch (may be malformed; filtered here)
  - WorkSession: The single derived start/end interval per staff per day
  - OvertimeRecord: One qualified OT entry with hours and pay
  - CalculationResult: The immutable output of a full computation

DESIGN PRINCIPLES:
  1. Purity: Compute is a pure function; no I/O, no hidden state
  2. Precision: pay uses decimal.Decimal, time-of-day uses integer minutes
  3. Silence: malformed input is dropped, never surfaced as an error
  4. Injection: rosters and rule tables are configuration, not globals

SEE ALSO:
  - rules.go: The tier x day-type rule table and accrual branches
  - grouping.go: Event grouping and session extraction
  - engine.go: The top-level Compute fold and aggregation
*/
package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CLOCK EVENT - Raw attendance punch
// =============================================================================

// ClockEvent is a single raw attendance record as delivered by the
// ingestion boundary. It may be malformed: empty name or zero timestamp.
// The grouper drops such events silently.
type ClockEvent struct {
	StaffName string
	At        time.Time
}

// Valid reports whether the event carries enough data to be grouped.
func (e ClockEvent) Valid() bool {
	return e.StaffName != "" && !e.At.IsZero()
}

// =============================================================================
// STAFF TIER - Special roster vs everyone else
// =============================================================================

type Tier string

const (
	TierSpecial  Tier = "special"
	TierStandard Tier = "standard"
)

// =============================================================================
// DAY CLASSIFICATION
// =============================================================================

type DayType string

const (
	DayHoliday DayType = "holiday"
	DayRegular DayType = "regular"
)

// =============================================================================
// WORK SESSION - Derived start/end interval, at most one per staff per day
// =============================================================================

type WorkSession struct {
	StaffName string
	Date      time.Time // midnight of the session's calendar date
	Start     time.Time // earliest punch of the day
	End       time.Time // latest punch of the day
}

// =============================================================================
// OVERTIME RECORD - One qualified OT entry
// =============================================================================

// OvertimeRecord is the accrual engine's unit of output. Start is the
// effective OT start: the actual clock-in on holidays, the synthesized
// window boundary (16:30 / 17:00) on regular days.
type OvertimeRecord struct {
	Date    time.Time
	DayType DayType
	Start   time.Time
	End     time.Time
	Hours   int
	Pay     decimal.Decimal
}

// =============================================================================
// CALCULATION RESULT - Immutable output of one Compute invocation
// =============================================================================

// StaffTotal is one summary line: a staff member with strictly positive
// total pay for the month.
type StaffTotal struct {
	StaffName string
	TotalPay  decimal.Decimal
}

// CalculationResult holds the month's summary and per-staff detail
// records. Summary is ordered by Thai-collated staff name; each detail
// list is ordered by effective OT start. A staff member appears in
// either only if their total pay is strictly positive.
type CalculationResult struct {
	Summary []StaffTotal
	Details map[string][]OvertimeRecord
}

// TotalPay returns the month-level grand total across all staff.
func (r CalculationResult) TotalPay() decimal.Decimal {
	total := decimal.Zero
	for _, s := range r.Summary {
		total = total.Add(s.TotalPay)
	}
	return total
}

// TotalHours returns the month-level grand total of qualified OT hours.
func (r CalculationResult) TotalHours() int {
	hours := 0
	for _, records := range r.Details {
		for _, rec := range records {
			hours += rec.Hours
		}
	}
	return hours
}
