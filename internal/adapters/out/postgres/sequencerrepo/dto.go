// Package sequencerrepo issues the per-calendar-day sequential order numbers.
// A single counter row per day is bumped atomically inside the placement
// transaction, so concurrent placements never observe the same number and a
// rolled back placement leaves a gap rather than a duplicate.
package sequencerrepo

import "time"

// CounterDTO represents the database structure for daily order counters.
type CounterDTO struct {
	Day   time.Time `gorm:"type:date;primaryKey"`
	Value int       `gorm:"not null"`
}

// TableName specifies the database table name for daily counters.
func (CounterDTO) TableName() string {
	return "daily_order_counters"
}
