package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
	"github.com/tutorlink/booking-service/internal/integrations/videoprovider"
)

// AppointmentRepository интерфейс репозитория записей на занятия
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListByParticipant(ctx context.Context, accountID uuid.UUID, role domain.Role) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
	SetNotes(ctx context.Context, id uuid.UUID, notes string) error
	SetVideoToken(ctx context.Context, id uuid.UUID, token string) error
}

// AccountRepository интерфейс репозитория аккаунтов
type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

// Ledger интерфейс кредитного леджера
type Ledger interface {
	Transfer(ctx context.Context, fromID, toID uuid.UUID, amount int64, debitType, creditType domain.TransactionType, key *string) error
}

// VideoClient интерфейс клиента видеопровайдера
type VideoClient interface {
	GenerateToken(ctx context.Context, req videoprovider.TokenRequest) (string, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider абстракция над текущим временем
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
