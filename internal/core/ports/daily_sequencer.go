package ports

import (
	"context"
	"time"
)

// DailySequencer hands out the per-calendar-day order numbers. Numbers are
// monotonically increasing within a day in the restaurant's timezone and
// never duplicated; gaps are acceptable. Implementations must make the
// increment atomic — the engine never retries a number.
type DailySequencer interface {
	// NextDailyNumber returns the next number for the calendar day of the
	// given local time.
	NextDailyNumber(ctx context.Context, day time.Time) (int, error)
}
