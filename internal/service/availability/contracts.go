package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	Upsert(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	GetByTutor(ctx context.Context, tutorID uuid.UUID) (*domain.AvailabilityWindow, error)
}

// AccountRepository интерфейс репозитория аккаунтов
type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
