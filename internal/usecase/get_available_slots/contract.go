package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на занятия
type AppointmentRepository interface {
	// ListScheduledByTutor получает активные записи тьютора до границы горизонта
	ListScheduledByTutor(ctx context.Context, tutorID uuid.UUID, until time.Time) ([]*domain.Appointment, error)
}

// AccountRepository интерфейс репозитория аккаунтов
type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByTutor(ctx context.Context, tutorID uuid.UUID) (*domain.AvailabilityWindow, error)
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
