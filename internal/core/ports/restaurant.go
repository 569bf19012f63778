package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/services"
)

// SettingsProvider supplies the restaurant configuration consumed by the
// pricing engine: accepting flag, time estimates, and the delivery minimum.
type SettingsProvider interface {
	Settings(ctx context.Context) (services.RestaurantSettings, error)
}

// BusinessHours answers whether the restaurant is open at a given local time.
type BusinessHours interface {
	IsOpen(ctx context.Context, now time.Time) (bool, error)
}
