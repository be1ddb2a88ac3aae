package suggest_slots

import "time"

// Request модель запроса альтернативных времен
type Request struct {
	Date            time.Time
	StartTime       string // Запрошенное время, исключается из предложений
	PartySize       int
	DurationMinutes *int
}

// Response модель ответа с предложенными временами
type Response struct {
	Date      string   `json:"date"`
	Slots     []string `json:"slots"` // "HH:MM", не более пяти
	PartySize int      `json:"partySize"`
}
