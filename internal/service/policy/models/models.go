package models

import "github.com/mesaviva/MV-ReservationService/internal/domain"

// UpdatePolicyRequest запрос на обновление конфигурации ресторана.
// Nil-поля не меняются, MaxReservationsPerSlot снимается нулем.
type UpdatePolicyRequest struct {
	RestaurantName *string `json:"restaurantName,omitempty"`
	Address        *string `json:"address,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	NotifyEmail    *string `json:"notifyEmail,omitempty"`

	StandardDurationMinutes *int `json:"standardDurationMinutes,omitempty"`
	SlotIntervalMinutes     *int `json:"slotIntervalMinutes,omitempty"`
	MaxReservationsPerSlot  *int `json:"maxReservationsPerSlot,omitempty"`
	MinCancelLeadMinutes    *int `json:"minCancelLeadMinutes,omitempty"`
	MaxLatenessMinutes      *int `json:"maxLatenessMinutes,omitempty"`

	AllowUnassignedOverflow *bool `json:"allowUnassignedOverflow,omitempty"`
}

// PolicyResponse ответ с конфигурацией ресторана
type PolicyResponse struct {
	RestaurantName string `json:"restaurantName"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	NotifyEmail    string `json:"notifyEmail,omitempty"`

	StandardDurationMinutes int  `json:"standardDurationMinutes"`
	SlotIntervalMinutes     int  `json:"slotIntervalMinutes"`
	MaxReservationsPerSlot  *int `json:"maxReservationsPerSlot,omitempty"`
	MinCancelLeadMinutes    int  `json:"minCancelLeadMinutes"`
	MaxLatenessMinutes      int  `json:"maxLatenessMinutes"`

	AllowUnassignedOverflow bool `json:"allowUnassignedOverflow"`
}

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(p *domain.RestaurantPolicy) *PolicyResponse {
	if p == nil {
		return nil
	}
	return &PolicyResponse{
		RestaurantName:          p.RestaurantName,
		Address:                 p.Address,
		Phone:                   p.Phone,
		NotifyEmail:             p.NotifyEmail,
		StandardDurationMinutes: p.StandardDurationMinutes,
		SlotIntervalMinutes:     p.SlotIntervalMinutes,
		MaxReservationsPerSlot:  p.MaxReservationsPerSlot,
		MinCancelLeadMinutes:    p.MinCancelLeadMinutes,
		MaxLatenessMinutes:      p.MaxLatenessMinutes,
		AllowUnassignedOverflow: p.AllowUnassignedOverflow,
	}
}
