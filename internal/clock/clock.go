// Package clock supplies wall-clock time to the tracker so log timestamps and
// record bookkeeping can be pinned in tests.
package clock

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/dnd-combat-tracker/internal/clock TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}
