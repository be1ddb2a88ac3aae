package create_reservation

import (
	"context"

	createReservation "github.com/mesaviva/MV-ReservationService/internal/usecase/create_reservation"
	suggestSlots "github.com/mesaviva/MV-ReservationService/internal/usecase/suggest_slots"
)

type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

// SuggestSlotsUseCase подбирает альтернативные времена для отказов
// по пересечениям и вместимости
type SuggestSlotsUseCase interface {
	Execute(ctx context.Context, req *suggestSlots.Request) (*suggestSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
