// Package settingsrepo reads the restaurant configuration the pricing engine
// depends on: whether orders are accepted, the pickup and delivery time
// estimates, the delivery minimum, and the opening hours.
package settingsrepo

import "github.com/shopspring/decimal"

// SettingsDTO represents the single restaurant configuration row.
type SettingsDTO struct {
	ID                        int             `gorm:"primaryKey"`
	AcceptingOrders           bool            `gorm:"not null"`
	EstimatedPickupMinutes    int             `gorm:"not null"`
	EstimatedDeliveryMinutes  int             `gorm:"not null"`
	MinimumDeliveryOrderValue decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OpensAt                   string          `gorm:"type:varchar(5);not null"`
	ClosesAt                  string          `gorm:"type:varchar(5);not null"`
	Timezone                  string          `gorm:"type:varchar(64);not null"`
}

// TableName specifies the database table name for restaurant settings.
func (SettingsDTO) TableName() string {
	return "restaurant_settings"
}
