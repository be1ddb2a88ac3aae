package models

import "github.com/mesaviva/MV-ReservationService/internal/domain"

// Request модели

// CreateIntervalRequest запрос на добавление интервала работы
type CreateIntervalRequest struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	OpenTime  string `json:"openTime"`  // "12:00"
	CloseTime string `json:"closeTime"` // "15:00"
}

// UpdateIntervalRequest запрос на изменение интервала.
// Nil-поля не меняются.
type UpdateIntervalRequest struct {
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// Response модели

// IntervalResponse ответ с данными интервала работы
type IntervalResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	DayName   string `json:"dayName"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	Active    bool   `json:"active"`
}

// IntervalListResponse ответ со списком интервалов
type IntervalListResponse struct {
	Intervals []IntervalResponse `json:"intervals"`
}

// Методы конвертации

// FromDomainInterval конвертирует domain модель в DTO
func FromDomainInterval(h *domain.BusinessHourInterval, dayName string) *IntervalResponse {
	if h == nil {
		return nil
	}
	return &IntervalResponse{
		ID:        h.ID,
		DayOfWeek: h.DayOfWeek,
		DayName:   dayName,
		OpenTime:  h.OpenTime.String(),
		CloseTime: h.CloseTime.String(),
		Active:    h.Active,
	}
}
