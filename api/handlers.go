/*
handlers.go - HTTP handler implementations

PURPOSE:
  Thin glue between HTTP and the collaborators: parse report parameters
  from the query string, run the pure engine against the cached dataset,
  shape the output. The handlers hold the only mutable state in the
  process (the currently loaded event set) behind a RWMutex, because
  the engine itself is stateless and recomputes on every request.

PARAMETERS:
  month     1-12, default: current month
  year      Gregorian, default: current year
  holidays  comma-separated day-of-month list, e.g. "5,13"
  format    "xlsx" on sheet endpoints streams a workbook instead of JSON
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/avlab/ot-engine/ingest"
	"github.com/avlab/ot-engine/overtime"
	"github.com/avlab/ot-engine/report"
)

type Handler struct {
	engine *overtime.Engine
	sheets report.SheetConfig
	loader *ingest.Loader
	log    zerolog.Logger

	mu     sync.RWMutex
	events []overtime.ClockEvent
	origin ingest.Origin
}

func NewHandler(engine *overtime.Engine, sheets report.SheetConfig, loader *ingest.Loader, log zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		sheets: sheets,
		loader: loader,
		log:    log,
	}
}

// Refresh reloads the attendance dataset through the fallback chain.
// Never fails; the worst case is the mock dataset.
func (h *Handler) Refresh(ctx context.Context) ingest.Origin {
	events, origin := h.loader.Load(ctx)

	h.mu.Lock()
	h.events = events
	h.origin = origin
	h.mu.Unlock()

	return origin
}

func (h *Handler) dataset() ([]overtime.ClockEvent, ingest.Origin) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.events, h.origin
}

// =============================================================================
// REPORT PARAMETERS
// =============================================================================

type reportParams struct {
	month    time.Month
	year     int
	holidays overtime.HolidaySet
}

func parseReportParams(r *http.Request) (reportParams, error) {
	now := time.Now()
	params := reportParams{
		month:    now.Month(),
		year:     now.Year(),
		holidays: overtime.NewHolidaySet(),
	}

	q := r.URL.Query()
	if raw := q.Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return params, fmt.Errorf("month must be 1-12, got %q", raw)
		}
		params.month = time.Month(m)
	}
	if raw := q.Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 {
			return params, fmt.Errorf("year must be a positive integer, got %q", raw)
		}
		params.year = y
	}
	if raw := q.Get("holidays"); raw != "" {
		var days []int
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			d, err := strconv.Atoi(part)
			if err != nil || d < 1 || d > 31 {
				return params, fmt.Errorf("holidays must be day numbers 1-31, got %q", part)
			}
			days = append(days, d)
		}
		params.holidays = overtime.NewHolidaySet(days...)
	}
	return params, nil
}

// =============================================================================
// HANDLERS
// =============================================================================

// GetReport computes and returns the month's calculation result.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	params, err := parseReportParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	events, origin := h.dataset()
	result := h.engine.Compute(params.month, params.year, params.holidays, events)

	summary, details := toResultDTO(result)
	respondJSON(w, http.StatusOK, CalculationResultDTO{
		Month:    int(params.month),
		Year:     params.year,
		Holidays: params.holidays.Days(),
		Source:   string(origin),
		Summary:  summary,
		Details:  details,
	})
}

// GetSignSheet returns the sign sheet as JSON, or as an .xlsx workbook
// when format=xlsx.
func (h *Handler) GetSignSheet(w http.ResponseWriter, r *http.Request) {
	params, err := parseReportParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	events, _ := h.dataset()
	result := h.engine.Compute(params.month, params.year, params.holidays, events)
	sheet := report.BuildSignSheet(result, h.engine.Roster(), params.month, params.year)

	if r.URL.Query().Get("format") == "xlsx" {
		h.streamWorkbook(w, fmt.Sprintf("sign-sheet-%d-%02d.xlsx", params.year, params.month), sheet.WriteXLSX)
		return
	}
	respondJSON(w, http.StatusOK, toSignSheetDTO(sheet))
}

// GetDisbursement returns the disbursement grid as JSON, or as an .xlsx
// workbook when format=xlsx.
func (h *Handler) GetDisbursement(w http.ResponseWriter, r *http.Request) {
	params, err := parseReportParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	events, _ := h.dataset()
	result := h.engine.Compute(params.month, params.year, params.holidays, events)
	sheet := report.BuildDisbursementSheet(result, h.engine.Roster(), h.sheets, params.month, params.year, params.holidays)

	if r.URL.Query().Get("format") == "xlsx" {
		h.streamWorkbook(w, fmt.Sprintf("disbursement-%d-%02d.xlsx", params.year, params.month), sheet.WriteXLSX)
		return
	}
	respondJSON(w, http.StatusOK, toDisbursementDTO(sheet))
}

// GetSource reports which source flavor served the active dataset.
func (h *Handler) GetSource(w http.ResponseWriter, r *http.Request) {
	events, origin := h.dataset()
	respondJSON(w, http.StatusOK, SourceStatusDTO{Origin: string(origin), Events: len(events)})
}

// RefreshSource re-runs the ingestion fallback chain.
func (h *Handler) RefreshSource(w http.ResponseWriter, r *http.Request) {
	origin := h.Refresh(r.Context())
	events, _ := h.dataset()
	respondJSON(w, http.StatusOK, SourceStatusDTO{Origin: string(origin), Events: len(events)})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func (h *Handler) streamWorkbook(w http.ResponseWriter, filename string, write func(io.Writer) error) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := write(w); err != nil {
		// Headers are gone; all we can do is log.
		h.log.Error().Err(err).Str("file", filename).Msg("workbook write failed")
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
