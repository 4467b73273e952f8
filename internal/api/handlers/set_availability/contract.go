package set_availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
	"github.com/tutorlink/booking-service/pkg/types"
)

type AvailabilityService interface {
	SetWindow(ctx context.Context, tutorID uuid.UUID, start, end types.TimeString) (*domain.AvailabilityWindow, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
