package update_policy

import (
	"context"

	"github.com/mesaviva/MV-ReservationService/internal/service/policy/models"
)

type PolicyService interface {
	Update(ctx context.Context, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
