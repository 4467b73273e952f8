package purchase_credits

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

type LedgerService interface {
	Credit(ctx context.Context, accountID uuid.UUID, amount int64, txType domain.TransactionType, key *string) error
	Balance(ctx context.Context, accountID uuid.UUID) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
