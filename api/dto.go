/*
dto.go - Wire representations of engine output

PURPOSE:
  JSON shapes for the report endpoints. The engine's domain types carry
  time.Time and decimal.Decimal; the wire carries the strings the UI
  actually renders (dd/mm/yyyy dates, HH:MM times, two-decimal pay).
*/
package api

import (
	"fmt"

	"github.com/avlab/ot-engine/overtime"
	"github.com/avlab/ot-engine/report"
)

// OvertimeRecordDTO mirrors one qualified OT entry.
type OvertimeRecordDTO struct {
	Date     string  `json:"date"`     // dd/mm/yyyy
	DayType  string  `json:"dayType"`  // "holiday" | "regular"
	OTPeriod string  `json:"otPeriod"` // "16:30 - 20:10"
	Start    string  `json:"startTime"`
	End      string  `json:"endTime"`
	Hours    int     `json:"hours"`
	Pay      float64 `json:"pay"`
}

// StaffTotalDTO is one summary line.
type StaffTotalDTO struct {
	StaffName string  `json:"name"`
	TotalPay  float64 `json:"totalPay"`
}

// CalculationResultDTO is the full report payload.
type CalculationResultDTO struct {
	Month    int                            `json:"month"`
	Year     int                            `json:"year"`
	Holidays []int                          `json:"holidays"`
	Source   string                         `json:"source"`
	Summary  []StaffTotalDTO                `json:"summary"`
	Details  map[string][]OvertimeRecordDTO `json:"details"`
}

func toResultDTO(result overtime.CalculationResult) ([]StaffTotalDTO, map[string][]OvertimeRecordDTO) {
	summary := make([]StaffTotalDTO, 0, len(result.Summary))
	for _, s := range result.Summary {
		summary = append(summary, StaffTotalDTO{
			StaffName: s.StaffName,
			TotalPay:  s.TotalPay.InexactFloat64(),
		})
	}

	details := make(map[string][]OvertimeRecordDTO, len(result.Details))
	for name, records := range result.Details {
		dtos := make([]OvertimeRecordDTO, 0, len(records))
		for _, r := range records {
			dtos = append(dtos, OvertimeRecordDTO{
				Date:     fmt.Sprintf("%d/%d/%d", r.Date.Day(), int(r.Date.Month()), r.Date.Year()),
				DayType:  string(r.DayType),
				OTPeriod: report.ClockTime(r.Start) + " - " + report.ClockTime(r.End),
				Start:    report.ClockTime(r.Start),
				End:      report.ClockTime(r.End),
				Hours:    r.Hours,
				Pay:      r.Pay.InexactFloat64(),
			})
		}
		details[name] = dtos
	}
	return summary, details
}

// SignSheetDTO carries both roster pages of the sign sheet.
type SignSheetDTO struct {
	Month   int          `json:"month"`
	Year    int          `json:"year"`
	General []SignRowDTO `json:"general"`
	Special []SignRowDTO `json:"special"`
}

type SignRowDTO struct {
	ThaiDate  string `json:"thaiDate"`
	StaffName string `json:"name"`
	TimeIn    string `json:"timeIn"`
	TimeOut   string `json:"timeOut"`
	Note      string `json:"note,omitempty"`
}

func toSignSheetDTO(sheet report.SignSheet) SignSheetDTO {
	dto := SignSheetDTO{Month: int(sheet.Month), Year: sheet.Year}
	for _, r := range sheet.General {
		dto.General = append(dto.General, toSignRowDTO(r))
	}
	for _, r := range sheet.Special {
		dto.Special = append(dto.Special, toSignRowDTO(r))
	}
	return dto
}

func toSignRowDTO(r report.SignRow) SignRowDTO {
	return SignRowDTO{
		ThaiDate:  r.ThaiDate,
		StaffName: r.StaffName,
		TimeIn:    r.TimeIn,
		TimeOut:   r.TimeOut,
		Note:      r.Note,
	}
}

// DisbursementDTO carries the payroll grid.
type DisbursementDTO struct {
	Month         int                  `json:"month"`
	Year          int                  `json:"year"`
	DaysInMonth   int                  `json:"daysInMonth"`
	HolidayDays   []int                `json:"holidayDays"`
	Rows          []DisbursementRowDTO `json:"rows"`
	TotalHours    int                  `json:"totalHours"`
	TotalPay      float64              `json:"totalPay"`
	TotalPayWords string               `json:"totalPayWords"`
}

type DisbursementRowDTO struct {
	Seq          int         `json:"seq"`
	StaffName    string      `json:"name"`
	Position     string      `json:"position"`
	HolidayHours map[int]int `json:"holidayHoursByDay"`
	RegularHours map[int]int `json:"regularHoursByDay"`
	TotalPay     float64     `json:"totalPay"`
}

func toDisbursementDTO(sheet report.DisbursementSheet) DisbursementDTO {
	dto := DisbursementDTO{
		Month:         int(sheet.Month),
		Year:          sheet.Year,
		DaysInMonth:   sheet.DaysInMonth,
		HolidayDays:   sheet.HolidayDays,
		TotalHours:    sheet.TotalHours,
		TotalPay:      sheet.TotalPay.InexactFloat64(),
		TotalPayWords: sheet.TotalPayWords,
	}
	for _, r := range sheet.Rows {
		dto.Rows = append(dto.Rows, DisbursementRowDTO{
			Seq:          r.Seq,
			StaffName:    r.StaffName,
			Position:     r.Position,
			HolidayHours: r.HolidayHoursByDay,
			RegularHours: r.RegularHoursByDay,
			TotalPay:     r.TotalPay.InexactFloat64(),
		})
	}
	return dto
}

// SourceStatusDTO reports which source flavor served the active dataset.
type SourceStatusDTO struct {
	Origin string `json:"origin"`
	Events int    `json:"events"`
}
