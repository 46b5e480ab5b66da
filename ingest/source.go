/*
Package ingest retrieves raw attendance clock events for the engine.

PURPOSE:
  The OT engine only ever sees a (possibly empty) valid event collection;
  everything about reaching the outside world lives here. Three source
  flavors are provided (a remote HTTP attendance log, a local SQLite
  snapshot of the last successful fetch, and a deterministic mock for
  demo mode) plus a Loader that chains them so an upstream outage never
  reaches the core.

FAILURE SEMANTICS:
  Individual malformed entries in a remote payload are dropped, not
  reported; a record that cannot be parsed simply does not exist. Whole-
  source failures (network down, missing snapshot) surface as errors to
  the Loader, which falls through to the next flavor.

SEE ALSO:
  - snapshot.go: SQLite-backed local dataset
  - mock.go: Seeded synthetic clock events
  - loader.go: remote -> snapshot -> mock fallback chain
*/
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avlab/ot-engine/overtime"
)

// Source delivers a finite, possibly empty, possibly unordered event
// collection. Implementations must not require pre-sorting or
// pre-filtering by the caller.
type Source interface {
	Fetch(ctx context.Context) ([]overtime.ClockEvent, error)
}

// =============================================================================
// HTTP SOURCE - Remote attendance log
// =============================================================================

// HTTPSource fetches a JSON array of {name, timestamp} tuples from the
// attendance log endpoint.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

// wireEvent is the remote payload shape. Timestamps arrive as strings
// in a handful of layouts; unparseable ones drop the whole entry.
type wireEvent struct {
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
}

// timestampLayouts are tried in order. The attendance exporter emits
// RFC3339; older dumps used a bare datetime.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]overtime.ClockEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build attendance request: %w", err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch attendance log: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("attendance log returned %s", resp.Status)
	}

	var wire []wireEvent
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode attendance log: %w", err)
	}

	events := make([]overtime.ClockEvent, 0, len(wire))
	for _, w := range wire {
		at, ok := parseTimestamp(w.Timestamp)
		if !ok || w.Name == "" {
			continue
		}
		events = append(events, overtime.ClockEvent{StaffName: w.Name, At: at})
	}
	return events, nil
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
