/*
Package report builds the printable artifacts derived from a month's
OT calculation: the sign-in/out sheet and the disbursement sheet.

PURPOSE:
  The engine produces a CalculationResult; this package reshapes it into
  the row/grid structures the department actually prints, and can render
  either as an .xlsx workbook. No decision logic lives here; thresholds,
  caps and windows are all settled upstream in package overtime.

CONFIGURATION:
  Position titles and the canonical person ordering are injected via
  SheetConfig, not hardcoded, so tests (and future departments) can
  substitute their own tables. Staff missing from the tables fall back
  to a default title and Thai-alphabetical ordering.

SEE ALSO:
  - signsheet.go: One row per OT record, split general vs special roster
  - disbursement.go: Day-by-day grid per staff with rate rows and totals
  - xlsx.go: excelize rendering for both sheets
*/
package report

import (
	"fmt"
	"time"
)

// SheetConfig carries the static lookup tables the sheet generators
// need. Zero-value fields fall back to sane defaults.
type SheetConfig struct {
	// Department and Organization head the printed documents.
	Department   string
	Organization string

	// PositionTitles maps staff name -> printed position title.
	PositionTitles map[string]string

	// DefaultTitle is used for staff absent from PositionTitles.
	DefaultTitle string

	// CanonicalOrder lists named individuals in their required printing
	// order. Staff not listed sort after these, Thai-alphabetically.
	CanonicalOrder []string
}

// DefaultSheetConfig returns the department's standing tables.
func DefaultSheetConfig() SheetConfig {
	return SheetConfig{
		Department:   "งานโสตทัศนศึกษา",
		Organization: "โรงพยาบาลสมเด็จพระเจ้าตากสินมหาราช",
		PositionTitles: map[string]string{
			"นางสาวปพิชญา เอี้ยงหมี":  "เจ้าพนักงานโสตทัศนศึกษาชำนาญงาน",
			"นางสาวกนกวรรณ วงษ์กล่ำ": "นักวิชาการโสตทัศนศึกษา",
			"นายศุภฤกษ์ เนตรแก้ว":    "นักวิชาการโสตทัศนศึกษา",
			"นายกฤชณัท เทพมงคล":      "นักวิชาการโสตทัศนศึกษา",
		},
		DefaultTitle: "พนักงาน",
		CanonicalOrder: []string{
			"นางสาวปพิชญา เอี้ยงหมี",
			"นางสาวกนกวรรณ วงษ์กล่ำ",
			"นายศุภฤกษ์ เนตรแก้ว",
			"นายกฤชณัท เทพมงคล",
		},
	}
}

// TitleOf resolves a staff member's printed position title.
func (c SheetConfig) TitleOf(name string) string {
	if title, ok := c.PositionTitles[name]; ok {
		return title
	}
	if c.DefaultTitle != "" {
		return c.DefaultTitle
	}
	return "พนักงาน"
}

// rank returns the canonical-order index for a name, or len(order) for
// names not listed (they sort after every listed name).
func (c SheetConfig) rank(name string) int {
	for i, n := range c.CanonicalOrder {
		if n == name {
			return i
		}
	}
	return len(c.CanonicalOrder)
}

// =============================================================================
// THAI DATE FORMATTING
// =============================================================================

var thaiMonths = [13]string{
	"", // 1-indexed
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// ThaiMonthName returns the Thai name of a Gregorian month.
func ThaiMonthName(m time.Month) string { return thaiMonths[m] }

// BuddhistYear converts a Gregorian year to the Buddhist era used on
// printed documents.
func BuddhistYear(year int) int { return year + 543 }

// ThaiDate renders a date like "13 พฤศจิกายน 2568".
func ThaiDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), ThaiMonthName(t.Month()), BuddhistYear(t.Year()))
}

// ClockTime renders an instant as HH:MM for sheet cells.
func ClockTime(t time.Time) string { return t.Format("15:04") }
