package ingest

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/avlab/ot-engine/overtime"
)

// =============================================================================
// LOADER - remote -> snapshot -> mock fallback chain
// =============================================================================

// Origin identifies which source flavor ultimately served a dataset.
type Origin string

const (
	OriginRemote   Origin = "remote"
	OriginSnapshot Origin = "snapshot"
	OriginMock     Origin = "mock"
)

// Loader chains the source flavors. Remote data is preferred and, when
// it arrives, written back to the snapshot. On remote failure the
// snapshot serves stale-but-real data; with neither available, the mock
// keeps the rest of the system demonstrable. Loading therefore never
// fails: the core is guaranteed a valid event collection.
type Loader struct {
	Remote   Source
	Snapshot *Snapshot
	Mock     Source
	Log      zerolog.Logger
}

// Load runs the chain and reports which flavor won.
func (l *Loader) Load(ctx context.Context) ([]overtime.ClockEvent, Origin) {
	if l.Remote != nil {
		events, err := l.Remote.Fetch(ctx)
		if err == nil {
			l.saveSnapshot(ctx, events)
			l.Log.Info().Int("events", len(events)).Msg("attendance loaded from remote")
			return events, OriginRemote
		}
		l.Log.Warn().Err(err).Msg("remote attendance fetch failed")
	}

	if l.Snapshot != nil {
		events, err := l.Snapshot.Load(ctx)
		if err == nil && len(events) > 0 {
			l.Log.Info().Int("events", len(events)).Msg("attendance loaded from snapshot")
			return events, OriginSnapshot
		}
		if err != nil {
			l.Log.Warn().Err(err).Msg("snapshot load failed")
		}
	}

	if l.Mock != nil {
		events, _ := l.Mock.Fetch(ctx)
		l.Log.Info().Int("events", len(events)).Msg("attendance loaded from mock generator")
		return events, OriginMock
	}

	return nil, OriginMock
}

func (l *Loader) saveSnapshot(ctx context.Context, events []overtime.ClockEvent) {
	if l.Snapshot == nil {
		return
	}
	if err := l.Snapshot.Save(ctx, events); err != nil {
		l.Log.Warn().Err(err).Msg("snapshot save failed")
	}
}
