package payouts

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

// PayoutRepository интерфейс репозитория выплат
type PayoutRepository interface {
	Create(ctx context.Context, p *domain.Payout) (*domain.Payout, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payout, error)
	HasPending(ctx context.Context, tutorID uuid.UUID) (bool, error)
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]*domain.Payout, error)
	ListPending(ctx context.Context) ([]*domain.Payout, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error
}

// AccountRepository интерфейс репозитория аккаунтов
type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

// AppointmentRepository интерфейс репозитория записей на занятия
type AppointmentRepository interface {
	CountScheduledByTutor(ctx context.Context, tutorID uuid.UUID) (int64, error)
}

// Ledger интерфейс кредитного леджера
type Ledger interface {
	Debit(ctx context.Context, accountID uuid.UUID, amount int64, txType domain.TransactionType, key *string) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
