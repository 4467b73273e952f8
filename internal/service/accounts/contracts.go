package accounts

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

// AccountRepository интерфейс репозитория аккаунтов
type AccountRepository interface {
	Create(ctx context.Context, acc *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	UpdateProfile(ctx context.Context, acc *domain.Account) error
	UpdateVerification(ctx context.Context, id uuid.UUID, status domain.VerificationStatus) error
	ListTutors(ctx context.Context, status domain.VerificationStatus, specialty *string) ([]*domain.Account, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
