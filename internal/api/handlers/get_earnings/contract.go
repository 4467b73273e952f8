package get_earnings

import (
	"context"

	"github.com/google/uuid"

	payoutsService "github.com/tutorlink/booking-service/internal/service/payouts"
)

type PayoutsService interface {
	Earnings(ctx context.Context, tutorID uuid.UUID) (*payoutsService.Earnings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
