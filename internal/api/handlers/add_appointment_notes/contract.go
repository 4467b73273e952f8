package add_appointment_notes

import (
	"context"

	"github.com/google/uuid"
)

type AppointmentsService interface {
	AddNotes(ctx context.Context, appointmentID, actorID uuid.UUID, notes string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
