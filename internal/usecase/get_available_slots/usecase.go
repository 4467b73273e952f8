package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/tutorlink/booking-service/internal/domain"
	accountRepo "github.com/tutorlink/booking-service/internal/infra/storage/account"
	availabilityRepo "github.com/tutorlink/booking-service/internal/infra/storage/availability"
)

// UseCase use case для получения доступных слотов тьютора
type UseCase struct {
	appointmentRepo AppointmentRepository
	accountRepo     AccountRepository
	windowRepo      AvailabilityRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	accountRepo AccountRepository,
	windowRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		accountRepo:     accountRepo,
		windowRepo:      windowRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов
//
// The computation is pure given the window, the appointment set and the
// clock: the same inputs always produce the same day list, and days with
// no free slots are present with an empty list.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tutor=%s, horizon=%d days", req.TutorID, req.HorizonDays)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем тьютора
	tutor, err := uc.accountRepo.GetByID(ctx, req.TutorID)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			uc.logger.Warn("GetAvailableSlots: tutor=%s not found", req.TutorID)
			return nil, ErrTutorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get tutor=%s: %v", req.TutorID, err)
		return nil, fmt.Errorf("%w: failed to get tutor: %v", ErrInternal, err)
	}

	if tutor.Role != domain.RoleTutor {
		return nil, ErrNotTutor
	}
	if !tutor.IsVerifiedTutor() {
		uc.logger.Warn("GetAvailableSlots: tutor=%s is not verified", req.TutorID)
		return nil, ErrTutorNotVerified
	}

	// 3. Получаем окно доступности
	window, err := uc.windowRepo.GetByTutor(ctx, req.TutorID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			uc.logger.Info("GetAvailableSlots: tutor=%s has no availability window", req.TutorID)
			return nil, ErrNoAvailability
		}
		uc.logger.Error("GetAvailableSlots: failed to get window for tutor=%s: %v", req.TutorID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	if !window.IsActive() {
		return nil, ErrNoAvailability
	}

	now := uc.timeProvider.Now()
	today := startOfDay(now)

	// 4. Пустой горизонт - пустой список дней
	if req.HorizonDays == 0 {
		return &Response{TutorID: req.TutorID, Days: []domain.DaySlots{}}, nil
	}

	// 5. Получаем активные записи до конца горизонта одним запросом
	horizonEnd := today.AddDate(0, 0, req.HorizonDays)
	appointments, err := uc.appointmentRepo.ListScheduledByTutor(ctx, req.TutorID, horizonEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for tutor=%s: %v", req.TutorID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты для каждого дня горизонта
	days := make([]domain.DaySlots, 0, req.HorizonDays)
	for i := 0; i < req.HorizonDays; i++ {
		date := today.AddDate(0, 0, i)

		slots, err := generateDaySlots(window, date, now, appointments)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to generate slots for %s: %v",
				date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		days = append(days, domain.DaySlots{
			Date:        date.Format(domain.DateFormat),
			DisplayDate: dayLabel(date),
			Slots:       slots,
		})
	}

	total := 0
	for _, d := range days {
		total += len(d.Slots)
	}
	uc.logger.Info("GetAvailableSlots: tutor=%s, %d slots over %d days", req.TutorID, total, len(days))

	return &Response{
		TutorID: req.TutorID,
		Days:    days,
	}, nil
}
