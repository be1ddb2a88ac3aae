package update_business_hours

import (
	"context"

	"github.com/mesaviva/MV-ReservationService/internal/service/hours/models"
)

type HoursService interface {
	Update(ctx context.Context, id int64, req *models.UpdateIntervalRequest) (*models.IntervalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
