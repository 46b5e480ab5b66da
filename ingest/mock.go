package ingest

import (
	"context"
	"math/rand"
	"time"

	"github.com/avlab/ot-engine/overtime"
)

// =============================================================================
// MOCK SOURCE - Seeded synthetic year for demo mode
// =============================================================================

// MockSource generates a synthetic year of clock pairs: weekday work is
// common, weekend work occasional, clock-in between 08:00 and 09:00 and
// clock-out between 16:00 and 21:00. The same seed always produces the
// same dataset, so demo runs are reproducible.
type MockSource struct {
	Year int
	Seed int64
}

func NewMockSource(year int) *MockSource {
	return &MockSource{Year: year, Seed: int64(year)}
}

var mockStaff = []string{
	"นายวิทวัส แปงใจ",
	"นายปรพัฒน์ ขัตวงษ์",
	"นายศักดิ์ดา มั่นคง",
	"นางสาวนิภา ขยันงาน",
}

func (m *MockSource) Fetch(ctx context.Context) ([]overtime.ClockEvent, error) {
	rng := rand.New(rand.NewSource(m.Seed))

	var events []overtime.ClockEvent
	start := time.Date(m.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(m.Year, time.December, 31, 0, 0, 0, 0, time.UTC)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		wd := day.Weekday()
		chance := 0.6
		if wd == time.Saturday || wd == time.Sunday {
			chance = 0.2
		}

		for _, name := range mockStaff {
			if rng.Float64() >= chance {
				continue
			}
			clockIn := time.Date(day.Year(), day.Month(), day.Day(), 8, rng.Intn(60), 0, 0, time.UTC)
			clockOut := time.Date(day.Year(), day.Month(), day.Day(), 16+rng.Intn(5), rng.Intn(60), 0, 0, time.UTC)
			events = append(events,
				overtime.ClockEvent{StaffName: name, At: clockIn},
				overtime.ClockEvent{StaffName: name, At: clockOut},
			)
		}
	}
	return events, nil
}
