package set_user_role

import (
	"context"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
	accountsService "github.com/tutorlink/booking-service/internal/service/accounts"
)

type AccountsService interface {
	SetRole(ctx context.Context, id uuid.UUID, role domain.Role, profile *accountsService.TutorProfile) (*domain.Account, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
