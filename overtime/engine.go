/*
engine.go - Top-level compute fold and aggregation

PURPOSE:
  Wires the pipeline stages into one pure function:

    raw events -> grouped punches -> sessions -> accrued records -> result

  Every invocation recomputes from scratch; nothing persists between
  calls and the engine holds no mutable shared state, so Compute is safe
  to call concurrently. Callers re-running it on every parameter change
  may treat it as idempotent.

AGGREGATION:
  Staff whose month total is zero are excluded entirely. Detail lists are
  ordered by effective OT start; the summary is ordered by staff name
  under Thai collation (locale rules, not byte order).
*/
package overtime

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Engine bundles the injected configuration (roster, rule table) with
// the pure computation. The zero value is not usable; construct with
// NewEngine.
type Engine struct {
	roster *Roster
	rules  RuleTable
}

func NewEngine(roster *Roster, rules RuleTable) *Engine {
	return &Engine{roster: roster, rules: rules}
}

// NewDefaultEngine builds an engine with the department's standing
// roster and rule set.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultRoster(), DefaultRules())
}

// Roster exposes the injected roster for collaborators that split
// output by tier.
func (e *Engine) Roster() *Roster { return e.roster }

// Compute derives the month's qualified OT sessions and payable amounts.
// It never errors and never panics: malformed events are dropped, short
// sessions are skipped, and disqualified sessions simply emit nothing.
// The returned result is freshly built and never mutated afterwards.
func (e *Engine) Compute(month time.Month, year int, holidays HolidaySet, events []ClockEvent) CalculationResult {
	sessions := ExtractSessions(GroupEvents(events, month, year))

	byStaff := make(map[string][]OvertimeRecord)
	for _, session := range sessions {
		dayType := Classify(session.Date, holidays)
		tier := e.roster.TierOf(session.StaffName)
		record, ok := e.rules.Accrue(session, dayType, tier)
		if !ok {
			continue
		}
		byStaff[session.StaffName] = append(byStaff[session.StaffName], record)
	}

	return aggregate(byStaff)
}

// aggregate folds per-staff records into the final result, applying the
// zero-pay filter and both sort orders.
func aggregate(byStaff map[string][]OvertimeRecord) CalculationResult {
	result := CalculationResult{
		Details: make(map[string][]OvertimeRecord),
	}

	for name, records := range byStaff {
		totalPay := records[0].Pay
		for _, r := range records[1:] {
			totalPay = totalPay.Add(r.Pay)
		}
		if !totalPay.IsPositive() {
			continue
		}

		sorted := append([]OvertimeRecord(nil), records...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Start.Before(sorted[j].Start)
		})

		result.Summary = append(result.Summary, StaffTotal{StaffName: name, TotalPay: totalPay})
		result.Details[name] = sorted
	}

	// Collators are not safe for concurrent use, so build one per call.
	coll := collate.New(language.Thai)
	sort.SliceStable(result.Summary, func(i, j int) bool {
		return coll.CompareString(result.Summary[i].StaffName, result.Summary[j].StaffName) < 0
	})

	return result
}

// NameComparator returns a Thai-collation name ordering. Reporting
// collaborators use it so sheet ordering matches the summary. Each call
// returns an independent comparator; the underlying collator is not safe
// for concurrent use.
func NameComparator() func(a, b string) int {
	coll := collate.New(language.Thai)
	return func(a, b string) int { return coll.CompareString(a, b) }
}
