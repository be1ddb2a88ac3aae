package get_available_tables

import (
	"context"

	findTables "github.com/mesaviva/MV-ReservationService/internal/usecase/find_tables"
)

type FindTablesUseCase interface {
	Execute(ctx context.Context, req *findTables.Request) (*findTables.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
