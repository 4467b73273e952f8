package book_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на занятия
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// ListScheduledByTutor получает активные записи тьютора с блокировкой FOR UPDATE внутри транзакции
	ListScheduledByTutor(ctx context.Context, tutorID uuid.UUID, until time.Time) ([]*domain.Appointment, error)
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
	CreateSession(ctx context.Context) (string, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
