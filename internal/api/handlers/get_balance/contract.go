package get_balance

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

type LedgerService interface {
	Balance(ctx context.Context, accountID uuid.UUID) (int64, error)
	History(ctx context.Context, accountID uuid.UUID) ([]*domain.CreditTransaction, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
