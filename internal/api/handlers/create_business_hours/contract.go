package create_business_hours

import (
	"context"

	"github.com/mesaviva/MV-ReservationService/internal/service/hours/models"
)

type HoursService interface {
	Create(ctx context.Context, req *models.CreateIntervalRequest) (*models.IntervalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
