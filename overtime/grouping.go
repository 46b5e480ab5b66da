/*
grouping.go - Event grouping and session extraction

PURPOSE:
  The first two stages of the computation pipeline. GroupEvents partitions
  raw punches by staff and calendar date, restricted to the target month.
  ExtractSessions reduces each group to the single daily work session.

FILTERING CONTRACT:
  Events with an empty staff name, a zero timestamp, or a timestamp outside
  the target month/year are dropped silently. The engine never reports
  malformed input; a bad punch simply does not exist.

SESSION RULE:
  A work session requires at least two punches on the same day. One punch
  cannot imply an interval, so it yields no session and no record. With two
  or more punches only the earliest and latest matter; everything in the
  middle is ignored.
*/
package overtime

import (
	"sort"
	"time"
)

// dayKey identifies a wall-clock calendar date independent of the
// timestamp's location. Keying the map by time.Time would split one
// calendar day into several groups when a feed mixes timestamp layouts
// (offset-carrying RFC3339 next to bare datetimes), because time.Time
// map equality includes the Location.
type dayKey struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{year: y, month: m, day: d}
}

// date places the key at midnight UTC for the session's Date field.
func (k dayKey) date() time.Time {
	return time.Date(k.year, k.month, k.day, 0, 0, 0, 0, time.UTC)
}

// groupedEvents maps staffName -> calendar date -> punches on that date.
// Punch order within a day is irrelevant; only min/max are used downstream.
type groupedEvents map[string]map[dayKey][]time.Time

// GroupEvents partitions events by staff and date, keeping only events
// inside the target month/year. Malformed events are dropped.
func GroupEvents(events []ClockEvent, month time.Month, year int) groupedEvents {
	grouped := make(groupedEvents)
	for _, e := range events {
		if !e.Valid() {
			continue
		}
		if e.At.Month() != month || e.At.Year() != year {
			continue
		}
		byDate, ok := grouped[e.StaffName]
		if !ok {
			byDate = make(map[dayKey][]time.Time)
			grouped[e.StaffName] = byDate
		}
		key := dayOf(e.At)
		byDate[key] = append(byDate[key], e.At)
	}
	return grouped
}

// ExtractSessions reduces each (staff, date) group to a single session
// spanning the earliest to the latest punch. Groups with fewer than two
// punches produce nothing. Sessions come back ordered by staff name and
// date so downstream folds are deterministic.
func ExtractSessions(grouped groupedEvents) []WorkSession {
	var sessions []WorkSession
	for name, byDate := range grouped {
		for key, punches := range byDate {
			if len(punches) < 2 {
				continue
			}
			start, end := punches[0], punches[0]
			for _, p := range punches[1:] {
				if p.Before(start) {
					start = p
				}
				if p.After(end) {
					end = p
				}
			}
			sessions = append(sessions, WorkSession{
				StaffName: name,
				Date:      key.date(),
				Start:     start,
				End:       end,
			})
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].StaffName != sessions[j].StaffName {
			return sessions[i].StaffName < sessions[j].StaffName
		}
		return sessions[i].Date.Before(sessions[j].Date)
	})
	return sessions
}
