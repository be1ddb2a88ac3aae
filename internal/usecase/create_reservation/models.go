package create_reservation

import (
	"time"
)

// Request модель запроса на создание брони
type Request struct {
	Date            time.Time // Дата брони (без времени)
	StartTime       string    // Время начала в любом поддерживаемом формате ("19:00", "7:00 pm")
	PartySize       int       // Число гостей
	DurationMinutes *int      // Явная длительность, иначе стандартная из политики
	TableID         *int64    // Закрепить конкретный стол (опционально)
	Channel         string    // web | phone | in_person
	Notes           *string   // Пожелания гостя (опционально)

	// Существующий клиент либо контакты гостя для поиска/создания карточки
	CustomerID *int64
	GuestName  *string
	GuestPhone *string
	GuestEmail *string

	CreatedBy *int64 // ID сотрудника, nil для публичных броней
}

// Response модель ответа с созданной бронью
type Response struct {
	ID         int64
	CustomerID *int64
	TableID    *int64 // nil = бронь без стола (overflow)
	Date       time.Time
	StartTime  string
	EndTime    string
	PartySize  int
	Status     string
	Channel    string
	Notes      *string

	GuestName  *string
	GuestPhone *string
	GuestEmail *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
