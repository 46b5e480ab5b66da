/*
xlsx.go - excelize rendering for both printable sheets

The department distributes the sheets as workbooks for printing and
archival. Layout mirrors the paper forms: the sign sheet is one page per
roster, the disbursement sheet is a landscape grid with one column per
calendar day and two rate rows per person.
*/
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX renders the sign sheet as a workbook, one worksheet per
// roster that has rows.
func (s SignSheet) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	pages := []struct {
		name string
		rows []SignRow
	}{
		{"พนักงานทั่วไป", s.General},
		{"พนักงานพิเศษ", s.Special},
	}

	first := true
	for _, page := range pages {
		if len(page.rows) == 0 {
			continue
		}
		if first {
			if err := f.SetSheetName(f.GetSheetName(0), page.name); err != nil {
				return err
			}
			first = false
		} else if _, err := f.NewSheet(page.name); err != nil {
			return err
		}
		if err := s.writeSignPage(f, page.name, page.rows); err != nil {
			return err
		}
	}

	// Keep an empty default sheet rather than fail on a month with no rows.
	return f.Write(w)
}

func (s SignSheet) writeSignPage(f *excelize.File, sheet string, rows []SignRow) error {
	title := fmt.Sprintf("รายชื่อผู้ปฏิบัติงานนอกเวลาราชการ ประจำเดือน %s พ.ศ. %d",
		ThaiMonthName(s.Month), BuddhistYear(s.Year))
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}

	headers := []string{"วัน/เดือน/ปี", "ชื่อ-สกุล", "เวลามา", "ลายมือชื่อ", "เวลากลับ", "ลายมือชื่อ", "หมายเหตุ"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := []interface{}{row.ThaiDate, row.StaffName, row.TimeIn, "", row.TimeOut, "", row.Note}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+3)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteXLSX renders the disbursement grid as a single-worksheet
// workbook: fixed columns, one column per calendar day, two rate rows
// per person, and a grand-total footer with the amount in words.
func (s DisbursementSheet) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	set := func(col, row int, v interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	title := fmt.Sprintf("หลักฐานการเบิกจ่ายค่าตอบแทนการปฏิบัติงานนอกเวลาราชการ ประจำเดือน %s พ.ศ. %d",
		ThaiMonthName(s.Month), BuddhistYear(s.Year))
	if err := set(1, 1, title); err != nil {
		return err
	}

	// Header: seq, name, position, rate, day 1..N, hours, rate/hr, total, signature.
	const dayStart = 5
	header := []interface{}{"ลำดับ", "ชื่อ-สกุล", "ตำแหน่ง", "อัตรา"}
	for col, h := range header {
		if err := set(col+1, 2, h); err != nil {
			return err
		}
	}
	for day := 1; day <= s.DaysInMonth; day++ {
		if err := set(dayStart+day-1, 2, day); err != nil {
			return err
		}
	}
	tail := []interface{}{"จำนวนชั่วโมง", "บาท/ชม.", "รวมเงิน", "ลายมือชื่อ"}
	for col, h := range tail {
		if err := set(dayStart+s.DaysInMonth+col, 2, h); err != nil {
			return err
		}
	}

	rowNum := 3
	for _, person := range s.Rows {
		// Rate-60 row: holiday hours.
		if err := set(1, rowNum, person.Seq); err != nil {
			return err
		}
		if err := set(2, rowNum, person.StaffName); err != nil {
			return err
		}
		if err := set(3, rowNum, person.Position); err != nil {
			return err
		}
		if err := s.writeRateRow(set, rowNum, 60, person.HolidayHoursByDay, person.HolidayHours, person.HolidayPay.InexactFloat64(), dayStart); err != nil {
			return err
		}
		if err := set(dayStart+s.DaysInMonth+2, rowNum, person.TotalPay.InexactFloat64()); err != nil {
			return err
		}

		// Rate-50 row: regular-day hours.
		if err := s.writeRateRow(set, rowNum+1, 50, person.RegularHoursByDay, person.RegularHours, person.RegularPay.InexactFloat64(), dayStart); err != nil {
			return err
		}
		rowNum += 2
	}

	footer := fmt.Sprintf("รวมรายการจ่ายทั้งสิ้น %s บาท (%s)", s.TotalPay.StringFixed(2), s.TotalPayWords)
	if err := set(1, rowNum, footer); err != nil {
		return err
	}
	if err := set(dayStart+s.DaysInMonth, rowNum, s.TotalHours); err != nil {
		return err
	}
	if err := set(dayStart+s.DaysInMonth+2, rowNum, s.TotalPay.InexactFloat64()); err != nil {
		return err
	}

	return f.Write(w)
}

func (s DisbursementSheet) writeRateRow(set func(col, row int, v interface{}) error, rowNum, rate int, byDay map[int]int, hours int, pay float64, dayStart int) error {
	if err := set(4, rowNum, rate); err != nil {
		return err
	}
	for day, h := range byDay {
		if err := set(dayStart+day-1, rowNum, h); err != nil {
			return err
		}
	}
	if hours > 0 {
		if err := set(dayStart+s.DaysInMonth, rowNum, hours); err != nil {
			return err
		}
		if err := set(dayStart+s.DaysInMonth+1, rowNum, pay); err != nil {
			return err
		}
	}
	return nil
}
