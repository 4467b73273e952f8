package verify_tutor

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

type AccountsService interface {
	UpdateVerification(ctx context.Context, adminID, tutorID uuid.UUID, status domain.VerificationStatus) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
