package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
	accountRepo "github.com/tutorlink/booking-service/internal/infra/storage/account"
	"github.com/tutorlink/booking-service/internal/service/ledger"
)

// UseCase use case для бронирования занятия
type UseCase struct {
	appointmentRepo AppointmentRepository
	accountRepo     AccountRepository
	ledger          Ledger
	videoClient     VideoClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	accountRepo AccountRepository,
	ledgerSvc Ledger,
	videoClient VideoClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		accountRepo:     accountRepo,
		ledger:          ledgerSvc,
		videoClient:     videoClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case бронирования занятия
//
// The video session is acquired before any credits move: if the provider
// is down the student keeps their credits and no appointment exists. The
// conflict re-check, the 2-credit transfer and the appointment insert
// then run in one serializable transaction, so two students racing for
// the same slot cannot both win.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: student=%s, tutor=%s, start=%s",
		req.StudentID, req.TutorID, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if !req.StartTime.After(now) {
		uc.logger.Warn("BookAppointment: slot %s is in the past", req.StartTime.Format(time.RFC3339))
		return nil, ErrSlotInPast
	}

	// 2. Проверяем студента
	student, err := uc.getAccount(ctx, req.StudentID, ErrStudentNotFound, "student")
	if err != nil {
		return nil, err
	}
	if !student.CanBook() {
		uc.logger.Warn("BookAppointment: account=%s has role=%s, cannot book", req.StudentID, student.Role)
		return nil, ErrNotStudent
	}

	// 3. Проверяем тьютора
	tutor, err := uc.getAccount(ctx, req.TutorID, ErrTutorNotFound, "tutor")
	if err != nil {
		return nil, err
	}
	if tutor.Role != domain.RoleTutor {
		return nil, ErrNotTutor
	}
	if !tutor.IsVerifiedTutor() {
		uc.logger.Warn("BookAppointment: tutor=%s is not verified", req.TutorID)
		return nil, ErrTutorNotVerified
	}

	// 4. Предварительная проверка баланса до обращения к видеопровайдеру
	// Окончательную проверку делает леджер внутри транзакции
	if student.Credits < domain.AppointmentCostCredits {
		uc.logger.Warn("BookAppointment: student=%s has %d credits, need %d",
			req.StudentID, student.Credits, domain.AppointmentCostCredits)
		return nil, ErrInsufficientCredits
	}

	// 5. Создаем видеосессию ДО перевода кредитов
	sessionID, err := uc.videoClient.CreateSession(ctx)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to create video session: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrVideoSession, err)
	}

	slotEnd := req.StartTime.Add(domain.SlotDurationMinutes * time.Minute)
	appointmentID := uuid.New()

	transferKey := "booking:" + appointmentID.String()
	if req.IdempotencyKey != nil {
		transferKey = *req.IdempotencyKey
	}

	var result *domain.Appointment

	// 6. Конфликт, перевод кредитов и создание записи в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Перепроверяем занятость слота с блокировкой FOR UPDATE
		appointments, err := uc.appointmentRepo.ListScheduledByTutor(txCtx, req.TutorID, slotEnd)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if hasConflict(req.StartTime, slotEnd, appointments) {
			uc.logger.Warn("BookAppointment: slot %s is taken for tutor=%s",
				req.StartTime.Format(time.RFC3339), req.TutorID)
			return ErrSlotNotAvailable
		}

		// 6.2. Переводим 2 кредита от студента тьютору
		err = uc.ledger.Transfer(
			txCtx,
			req.StudentID,
			req.TutorID,
			domain.AppointmentCostCredits,
			domain.TxAppointmentDeduction,
			domain.TxAppointmentDeduction,
			&transferKey,
		)
		if err != nil {
			if errors.Is(err, ledger.ErrInsufficientCredits) {
				return ErrInsufficientCredits
			}
			uc.logger.Error("BookAppointment: credit transfer failed: %v", err)
			return fmt.Errorf("%w: credit transfer failed: %v", ErrInternal, err)
		}

		// 6.3. Создаем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ID:                 appointmentID,
			TutorID:            req.TutorID,
			StudentID:          req.StudentID,
			StartTime:          req.StartTime,
			EndTime:            slotEnd,
			Status:             domain.StatusScheduled,
			StudentDescription: req.Description,
			VideoSessionID:     sessionID,
		})
		if err != nil {
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: created appointment=%s, session=%s", result.ID, sessionID)

	return &Response{
		ID:                 result.ID,
		TutorID:            result.TutorID,
		StudentID:          result.StudentID,
		StartTime:          result.StartTime,
		EndTime:            result.EndTime,
		Status:             string(result.Status),
		StudentDescription: result.StudentDescription,
		VideoSessionID:     result.VideoSessionID,
		CreatedAt:          result.CreatedAt,
	}, nil
}

func (uc *UseCase) getAccount(ctx context.Context, id uuid.UUID, notFound error, role string) (*domain.Account, error) {
	acc, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			uc.logger.Warn("BookAppointment: %s=%s not found", role, id)
			return nil, notFound
		}
		uc.logger.Error("BookAppointment: failed to get %s=%s: %v", role, id, err)
		return nil, fmt.Errorf("%w: failed to get %s: %v", ErrInternal, role, err)
	}
	return acc, nil
}
