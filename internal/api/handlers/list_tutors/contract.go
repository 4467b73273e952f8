package list_tutors

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

type AccountsService interface {
	ListTutors(ctx context.Context, specialty *string) ([]*domain.Account, error)
	ListPendingTutors(ctx context.Context, adminID uuid.UUID) ([]*domain.Account, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
