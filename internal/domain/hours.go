package domain

import (
	"fmt"

	"github.com/mesaviva/MV-ReservationService/pkg/types"
)

// BusinessHourInterval represents one open interval on a weekday.
// A day may carry several intervals (lunch and dinner service).
type BusinessHourInterval struct {
	ID        int64
	DayOfWeek int // 0=Sunday .. 6=Saturday
	OpenTime  types.TimeString
	CloseTime types.TimeString
	Active    bool
}

// Contains reports whether t falls inside [OpenTime, CloseTime)
func (h *BusinessHourInterval) Contains(t types.TimeString) bool {
	return !t.IsBefore(h.OpenTime) && t.IsBefore(h.CloseTime)
}

// FormatRange returns the interval as "HH:MM-HH:MM" for user-facing messages
func (h *BusinessHourInterval) FormatRange() string {
	return fmt.Sprintf("%s-%s", h.OpenTime, h.CloseTime)
}

// FormatIntervals форматирует список интервалов для сообщений об ошибках
func FormatIntervals(intervals []*BusinessHourInterval) []string {
	out := make([]string, 0, len(intervals))
	for _, h := range intervals {
		out = append(out, h.FormatRange())
	}
	return out
}
