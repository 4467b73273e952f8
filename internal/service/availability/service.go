package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
	accountRepo "github.com/tutorlink/booking-service/internal/infra/storage/account"
	availabilityRepo "github.com/tutorlink/booking-service/internal/infra/storage/availability"
	"github.com/tutorlink/booking-service/pkg/types"
)

// Service сервис управления окнами доступности тьюторов
type Service struct {
	windowRepo  WindowRepository
	accountRepo AccountRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(windowRepo WindowRepository, accountRepo AccountRepository, logger Logger) *Service {
	return &Service{
		windowRepo:  windowRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// SetWindow replaces the tutor's recurring daily window wholesale.
// Existing appointments are unaffected: conflicts are always computed
// against the live appointment set, never against the window record.
func (s *Service) SetWindow(ctx context.Context, tutorID uuid.UUID, start, end types.TimeString) (*domain.AvailabilityWindow, error) {
	s.logger.Info("SetWindow: tutor=%s window=%s-%s", tutorID, start, end)

	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if err := end.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if !start.IsBefore(end) {
		s.logger.Warn("SetWindow: invalid range %s-%s for tutor=%s", start, end, tutorID)
		return nil, ErrInvalidTimeRange
	}

	if err := s.requireTutor(ctx, tutorID, "SetWindow"); err != nil {
		return nil, err
	}

	window, err := s.windowRepo.Upsert(ctx, &domain.AvailabilityWindow{
		TutorID:   tutorID,
		StartTime: start,
		EndTime:   end,
		Status:    domain.AvailabilityAvailable,
	})
	if err != nil {
		s.logger.Error("SetWindow: repository error for tutor=%s: %v", tutorID, err)
		return nil, fmt.Errorf("%w: SetWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetWindow: tutor=%s window saved id=%s", tutorID, window.ID)
	return window, nil
}

// GetWindow returns the tutor's current window. A tutor without a
// configured window yields ErrNoAvailability, which callers must keep
// distinct from "fully booked".
func (s *Service) GetWindow(ctx context.Context, tutorID uuid.UUID) (*domain.AvailabilityWindow, error) {
	if err := s.requireTutor(ctx, tutorID, "GetWindow"); err != nil {
		return nil, err
	}

	window, err := s.windowRepo.GetByTutor(ctx, tutorID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			return nil, ErrNoAvailability
		}
		s.logger.Error("GetWindow: repository error for tutor=%s: %v", tutorID, err)
		return nil, fmt.Errorf("%w: GetWindow - repository error: %v", ErrInternal, err)
	}

	return window, nil
}

func (s *Service) requireTutor(ctx context.Context, tutorID uuid.UUID, op string) error {
	acc, err := s.accountRepo.GetByID(ctx, tutorID)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("%s: tutor=%s not found", op, tutorID)
			return ErrTutorNotFound
		}
		s.logger.Error("%s: repository error for tutor=%s: %v", op, tutorID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if acc.Role != domain.RoleTutor {
		s.logger.Warn("%s: account=%s is not a tutor", op, tutorID)
		return ErrNotTutor
	}

	return nil
}
