package report

import (
	"sort"
	"time"

	"github.com/avlab/ot-engine/overtime"
)

// =============================================================================
// SIGN SHEET - One row per OT record, for physical sign-off
// =============================================================================

// SignRow is one line of the sign sheet: a staff member's qualifying OT
// entry on one date, with blank signature cells left for ink.
type SignRow struct {
	Date      time.Time
	ThaiDate  string
	StaffName string
	TimeIn    string // HH:MM, effective OT start
	TimeOut   string // HH:MM
	Note      string // "วันหยุด" on holidays, empty otherwise
}

// SignSheet splits the month's rows into the general roster and the
// special-tier roster; the department prints them as separate pages.
type SignSheet struct {
	Month    time.Month
	Year     int
	General  []SignRow
	Special  []SignRow
}

// BuildSignSheet flattens the calculation result into sign rows. Rows
// sort by date, then by Thai-collated staff name within a date.
func BuildSignSheet(result overtime.CalculationResult, roster *overtime.Roster, month time.Month, year int) SignSheet {
	sheet := SignSheet{Month: month, Year: year}

	for name, records := range result.Details {
		tier := roster.TierOf(name)
		for _, rec := range records {
			row := SignRow{
				Date:      rec.Start,
				ThaiDate:  ThaiDate(rec.Date),
				StaffName: name,
				TimeIn:    ClockTime(rec.Start),
				TimeOut:   ClockTime(rec.End),
			}
			if rec.DayType == overtime.DayHoliday {
				row.Note = "วันหยุด"
			}
			if tier == overtime.TierSpecial {
				sheet.Special = append(sheet.Special, row)
			} else {
				sheet.General = append(sheet.General, row)
			}
		}
	}

	sortSignRows(sheet.General)
	sortSignRows(sheet.Special)
	return sheet
}

func sortSignRows(rows []SignRow) {
	cmp := overtime.NameComparator()
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return cmp(rows[i].StaffName, rows[j].StaffName) < 0
	})
}

// Empty reports whether the sheet has no rows at all.
func (s SignSheet) Empty() bool {
	return len(s.General) == 0 && len(s.Special) == 0
}
