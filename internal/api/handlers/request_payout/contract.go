package request_payout

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

type PayoutsService interface {
	Request(ctx context.Context, tutorID uuid.UUID, credits int64, paypalEmail string) (*domain.Payout, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
