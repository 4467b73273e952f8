package cancel_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

type AppointmentsService interface {
	Cancel(ctx context.Context, appointmentID, actorID uuid.UUID) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
