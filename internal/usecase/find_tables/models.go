package find_tables

import "time"

// Request модель запроса свободных столов на окно времени
type Request struct {
	Date            time.Time
	StartTime       string
	PartySize       int
	DurationMinutes *int
}

// TableOption свободный стол в ответе
type TableOption struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Zone     string `json:"zone,omitempty"`
}

// Response модель ответа со свободными столами,
// от самых тесных к самым просторным
type Response struct {
	Date      string        `json:"date"`
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	Tables    []TableOption `json:"tables"`
}
