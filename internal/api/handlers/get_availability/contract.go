package get_availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

type AvailabilityService interface {
	GetWindow(ctx context.Context, tutorID uuid.UUID) (*domain.AvailabilityWindow, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
