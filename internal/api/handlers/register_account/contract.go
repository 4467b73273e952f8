package register_account

import (
	"context"

	"github.com/tutorlink/booking-service/internal/domain"
)

type AccountsService interface {
	Register(ctx context.Context, name, email string) (*domain.Account, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
