package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/avlab/ot-engine/overtime"
	"github.com/avlab/ot-engine/report"
)

func TestBuildDisbursementSheet_ExcludesSpecialTier(t *testing.T) {
	result := novemberResult(t)

	sheet := report.BuildDisbursementSheet(result, overtime.DefaultRoster(),
		report.DefaultSheetConfig(), time.November, 2025, nil)

	// Only the standard staff member appears; the special-tier session is
	// disbursed elsewhere.
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, standardName, sheet.Rows[0].StaffName)
	assert.Equal(t, 1, sheet.Rows[0].Seq)
}

func TestBuildDisbursementSheet_RateRowsAndTotals(t *testing.T) {
	result := novemberResult(t)

	sheet := report.BuildDisbursementSheet(result, overtime.DefaultRoster(),
		report.DefaultSheetConfig(), time.November, 2025, nil)

	row := sheet.Rows[0]

	// Holiday (rate 60): Nov 2, 5 hours, 300. Regular (rate 50): Nov 4,
	// 3 hours, 150.
	assert.Equal(t, map[int]int{2: 5}, row.HolidayHoursByDay)
	assert.Equal(t, map[int]int{4: 3}, row.RegularHoursByDay)
	assert.Equal(t, 5, row.HolidayHours)
	assert.Equal(t, 3, row.RegularHours)
	assert.True(t, row.HolidayPay.Equal(decimal.NewFromInt(300)))
	assert.True(t, row.RegularPay.Equal(decimal.NewFromInt(150)))
	assert.True(t, row.TotalPay.Equal(decimal.NewFromInt(450)))

	assert.Equal(t, 8, sheet.TotalHours)
	assert.True(t, sheet.TotalPay.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, "สี่ร้อยห้าสิบบาทถ้วน", sheet.TotalPayWords)
}

func TestBuildDisbursementSheet_DayCellCappedAtEight(t *testing.T) {
	// GIVEN: A 12-hour Saturday session; totals keep the full hours but
	//        the grid cell shows at most 8
	engine := overtime.NewDefaultEngine()
	events := []overtime.ClockEvent{
		{StaffName: standardName, At: time.Date(2025, time.November, 1, 7, 0, 0, 0, time.UTC)},
		{StaffName: standardName, At: time.Date(2025, time.November, 1, 19, 0, 0, 0, time.UTC)},
	}
	result := engine.Compute(time.November, 2025, nil, events)

	sheet := report.BuildDisbursementSheet(result, overtime.DefaultRoster(),
		report.DefaultSheetConfig(), time.November, 2025, nil)

	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, map[int]int{1: 8}, sheet.Rows[0].HolidayHoursByDay)
	assert.Equal(t, 12, sheet.Rows[0].HolidayHours)
}

func TestBuildDisbursementSheet_CanonicalOrderThenThai(t *testing.T) {
	// GIVEN: Two canonically ordered staff plus one unlisted name, each
	//        with a qualifying regular evening
	engine := overtime.NewDefaultEngine()
	var events []overtime.ClockEvent
	for _, name := range []string{"นายกฤชณัท เทพมงคล", "นางสาวปพิชญา เอี้ยงหมี", "นายอรรถพล ใจดี"} {
		events = append(events,
			overtime.ClockEvent{StaffName: name, At: time.Date(2025, time.November, 4, 8, 0, 0, 0, time.UTC)},
			overtime.ClockEvent{StaffName: name, At: time.Date(2025, time.November, 4, 19, 0, 0, 0, time.UTC)},
		)
	}
	result := engine.Compute(time.November, 2025, nil, events)

	cfg := report.DefaultSheetConfig()
	sheet := report.BuildDisbursementSheet(result, overtime.DefaultRoster(), cfg, time.November, 2025, nil)

	require.Len(t, sheet.Rows, 3)
	// Canonical order puts ปพิชญา before กฤชณัท despite alphabetics; the
	// unlisted name falls to the end with the default title.
	assert.Equal(t, "นางสาวปพิชญา เอี้ยงหมี", sheet.Rows[0].StaffName)
	assert.Equal(t, "นายกฤชณัท เทพมงคล", sheet.Rows[1].StaffName)
	assert.Equal(t, "นายอรรถพล ใจดี", sheet.Rows[2].StaffName)
	assert.Equal(t, "เจ้าพนักงานโสตทัศนศึกษาชำนาญงาน", sheet.Rows[0].Position)
	assert.Equal(t, cfg.DefaultTitle, sheet.Rows[2].Position)
}

func TestBuildDisbursementSheet_HolidayDayShading(t *testing.T) {
	sheet := report.BuildDisbursementSheet(overtime.CalculationResult{}, overtime.DefaultRoster(),
		report.DefaultSheetConfig(), time.November, 2025, overtime.NewHolidaySet(13))

	assert.Equal(t, 30, sheet.DaysInMonth)
	// November 2025: Saturdays 1,8,15,22,29; Sundays 2,9,16,23,30; custom 13.
	assert.Equal(t, []int{1, 2, 8, 9, 13, 15, 16, 22, 23, 29, 30}, sheet.HolidayDays)
	assert.Equal(t, "ศูนย์บาทถ้วน", sheet.TotalPayWords)
}

func TestDisbursementSheet_WriteXLSX_RoundTrip(t *testing.T) {
	result := novemberResult(t)
	sheet := report.BuildDisbursementSheet(result, overtime.DefaultRoster(),
		report.DefaultSheetConfig(), time.November, 2025, nil)

	var buf bytes.Buffer
	require.NoError(t, sheet.WriteXLSX(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	// Title, header, two rate rows, footer.
	require.GreaterOrEqual(t, len(rows), 5)
	assert.Equal(t, standardName, rows[2][1])
	assert.Equal(t, "60", rows[2][3])
	assert.Equal(t, "50", rows[3][3])
}
