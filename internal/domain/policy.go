package domain

import "time"

// RestaurantPolicy is the restaurant-wide configuration singleton.
// Exactly one row exists; the policy repository creates it with defaults
// on first read.
type RestaurantPolicy struct {
	ID             int64
	RestaurantName string
	Address        string
	Phone          string
	NotifyEmail    string

	StandardDurationMinutes int  // длительность брони по умолчанию
	SlotIntervalMinutes     int  // шаг сетки слотов
	MaxReservationsPerSlot  *int // опциональный лимит броней на слот
	MinCancelLeadMinutes    int  // минимум минут до начала для отмены гостем
	MaxLatenessMinutes      int  // допустимое опоздание до отметки no-show

	// Допускать бронь без стола, когда совокупная вместимость позволяет,
	// но ни один отдельный стол не свободен
	AllowUnassignedOverflow bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultPolicy returns the policy created on first access
func DefaultPolicy() RestaurantPolicy {
	return RestaurantPolicy{
		RestaurantName:          "Mi Restaurante",
		StandardDurationMinutes: DefaultStandardDurationMinutes,
		SlotIntervalMinutes:     DefaultSlotIntervalMinutes,
		MinCancelLeadMinutes:    DefaultMinCancelLeadMinutes,
		MaxLatenessMinutes:      DefaultMaxLatenessMinutes,
		AllowUnassignedOverflow: true,
	}
}
