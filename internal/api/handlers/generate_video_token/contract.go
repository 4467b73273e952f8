package generate_video_token

import (
	"context"

	"github.com/google/uuid"
)

type AppointmentsService interface {
	GenerateVideoToken(ctx context.Context, appointmentID, actorID uuid.UUID) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
