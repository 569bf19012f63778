package settingsrepo

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSettingsProvider implements SettingsProvider and BusinessHours on top
// of the restaurant_settings row. The row is read per call; configuration
// changes take effect on the next pricing pass without a restart.
type GormSettingsProvider struct {
	db *gorm.DB
}

// NewGormSettingsProvider creates a settings provider backed by the database.
func NewGormSettingsProvider(db *gorm.DB) *GormSettingsProvider {
	return &GormSettingsProvider{db: db}
}

// Settings returns the restaurant configuration the pricing engine needs.
func (p *GormSettingsProvider) Settings(ctx context.Context) (services.RestaurantSettings, error) {
	dto, err := p.load(ctx)
	if err != nil {
		return services.RestaurantSettings{}, err
	}

	return services.RestaurantSettings{
		AcceptingOrders:           dto.AcceptingOrders,
		EstimatedPickupMinutes:    dto.EstimatedPickupMinutes,
		EstimatedDeliveryMinutes:  dto.EstimatedDeliveryMinutes,
		MinimumDeliveryOrderValue: kernel.NewMoneyFromDecimal(dto.MinimumDeliveryOrderValue),
	}, nil
}

// IsOpen reports whether the given moment falls inside the opening window in
// the restaurant's timezone. Windows that close past midnight, such as
// 17:00-01:00, are handled as spanning two calendar days.
func (p *GormSettingsProvider) IsOpen(ctx context.Context, now time.Time) (bool, error) {
	dto, err := p.load(ctx)
	if err != nil {
		return false, err
	}

	loc, err := time.LoadLocation(dto.Timezone)
	if err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause("timezone", err)
	}

	opens, err := minutesOfDay(dto.OpensAt)
	if err != nil {
		return false, err
	}
	closes, err := minutesOfDay(dto.ClosesAt)
	if err != nil {
		return false, err
	}

	local := now.In(loc)
	minute := local.Hour()*60 + local.Minute()

	if opens == closes {
		return false, nil
	}
	if opens < closes {
		return minute >= opens && minute < closes, nil
	}
	// overnight window
	return minute >= opens || minute < closes, nil
}

func (p *GormSettingsProvider) load(ctx context.Context) (SettingsDTO, error) {
	var dto SettingsDTO
	if err := p.db.WithContext(ctx).First(&dto).Error; err != nil {
		return SettingsDTO{}, err
	}
	return dto, nil
}

func minutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("opening hours value %q", hhmm), err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
