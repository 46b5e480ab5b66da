package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avlab/ot-engine/bahttext"
	"github.com/avlab/ot-engine/overtime"
)

// =============================================================================
// DISBURSEMENT SHEET - Day-by-day grid per staff, for payroll approval
// =============================================================================

// displayHourCap bounds the per-day hour shown in a grid cell. The
// printed form has single-digit cells; totals still use the real hours.
const displayHourCap = 8

// DisbursementRow is one person on the grid: two printed rate rows
// (60/hour for holidays, 50/hour for regular days) sharing name,
// position and total columns.
type DisbursementRow struct {
	Seq       int
	StaffName string
	Position  string

	// Day-of-month -> hours shown in that cell, capped for display.
	HolidayHoursByDay map[int]int
	RegularHoursByDay map[int]int

	HolidayHours int
	RegularHours int
	HolidayPay   decimal.Decimal
	RegularPay   decimal.Decimal
	TotalPay     decimal.Decimal
}

// DisbursementSheet is the complete grid for one month. Special-tier
// staff are disbursed through a separate channel and never appear here.
type DisbursementSheet struct {
	Month       time.Month
	Year        int
	DaysInMonth int
	HolidayDays []int // day numbers shaded as holidays on the grid

	Rows []DisbursementRow

	TotalHours    int
	TotalPay      decimal.Decimal
	TotalPayWords string
}

// BuildDisbursementSheet reshapes the calculation result into the
// payroll grid. Rows follow cfg.CanonicalOrder, then Thai-alphabetical
// for anyone unlisted.
func BuildDisbursementSheet(
	result overtime.CalculationResult,
	roster *overtime.Roster,
	cfg SheetConfig,
	month time.Month,
	year int,
	holidays overtime.HolidaySet,
) DisbursementSheet {
	sheet := DisbursementSheet{
		Month:       month,
		Year:        year,
		DaysInMonth: overtime.DaysInMonth(month, year),
		TotalPay:    decimal.Zero,
	}

	for day := 1; day <= sheet.DaysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if overtime.IsHoliday(date, holidays) {
			sheet.HolidayDays = append(sheet.HolidayDays, day)
		}
	}

	for name, records := range result.Details {
		if roster.TierOf(name) == overtime.TierSpecial {
			continue
		}

		row := DisbursementRow{
			StaffName:         name,
			Position:          cfg.TitleOf(name),
			HolidayHoursByDay: make(map[int]int),
			RegularHoursByDay: make(map[int]int),
			HolidayPay:        decimal.Zero,
			RegularPay:        decimal.Zero,
		}

		for _, rec := range records {
			day := rec.Date.Day()
			cell := rec.Hours
			if cell > displayHourCap {
				cell = displayHourCap
			}
			switch rec.DayType {
			case overtime.DayHoliday:
				row.HolidayHoursByDay[day] = cell
				row.HolidayHours += rec.Hours
				row.HolidayPay = row.HolidayPay.Add(rec.Pay)
			default:
				row.RegularHoursByDay[day] = cell
				row.RegularHours += rec.Hours
				row.RegularPay = row.RegularPay.Add(rec.Pay)
			}
			sheet.TotalHours += rec.Hours
		}

		row.TotalPay = row.HolidayPay.Add(row.RegularPay)
		sheet.TotalPay = sheet.TotalPay.Add(row.TotalPay)
		sheet.Rows = append(sheet.Rows, row)
	}

	cmp := overtime.NameComparator()
	sort.SliceStable(sheet.Rows, func(i, j int) bool {
		ri, rj := cfg.rank(sheet.Rows[i].StaffName), cfg.rank(sheet.Rows[j].StaffName)
		if ri != rj {
			return ri < rj
		}
		return cmp(sheet.Rows[i].StaffName, sheet.Rows[j].StaffName) < 0
	})
	for i := range sheet.Rows {
		sheet.Rows[i].Seq = i + 1
	}

	sheet.TotalPayWords = bahttext.Words(sheet.TotalPay)
	return sheet
}
