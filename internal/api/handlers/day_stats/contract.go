package day_stats

import (
	"context"
	"time"

	"github.com/mesaviva/MV-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	DayStats(ctx context.Context, date time.Time) (*models.DayStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
