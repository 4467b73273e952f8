package approve_payout

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

type PayoutsService interface {
	Approve(ctx context.Context, adminID, payoutID uuid.UUID) (*domain.Payout, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
