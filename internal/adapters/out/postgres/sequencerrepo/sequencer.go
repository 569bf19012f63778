package sequencerrepo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GormDailySequencer implements DailySequencer with a per-day counter row.
type GormDailySequencer struct {
	db *gorm.DB
}

// NewGormDailySequencer creates a sequencer bound to the given connection,
// usually the transaction of the enclosing unit of work.
func NewGormDailySequencer(db *gorm.DB) *GormDailySequencer {
	return &GormDailySequencer{db: db}
}

// NextDailyNumber atomically increments and returns the counter for the
// calendar day of the given moment. The first call of a day returns 1.
func (s *GormDailySequencer) NextDailyNumber(ctx context.Context, day time.Time) (int, error) {
	var value int
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO daily_order_counters (day, value)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET value = daily_order_counters.value + 1
		RETURNING value
	`, day.Format("2006-01-02")).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
