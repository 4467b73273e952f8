package get_payouts

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

type PayoutsService interface {
	History(ctx context.Context, tutorID uuid.UUID) ([]*domain.Payout, error)
	ListPending(ctx context.Context, adminID uuid.UUID) ([]*domain.Payout, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
