package list_business_hours

import (
	"context"

	"github.com/mesaviva/MV-ReservationService/internal/service/hours/models"
)

type HoursService interface {
	List(ctx context.Context) (*models.IntervalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
