package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

// AccountRepository интерфейс репозитория аккаунтов
type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	IncrementCredits(ctx context.Context, id uuid.UUID, amount int64) error
	DecrementCredits(ctx context.Context, id uuid.UUID, amount int64) error
}

// TransactionRepository интерфейс журнала кредитных транзакций
type TransactionRepository interface {
	Append(ctx context.Context, tx *domain.CreditTransaction) (*domain.CreditTransaction, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.CreditTransaction, error)
	SumByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
