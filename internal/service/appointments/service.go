// Package appointments implements the lifecycle of a booked session:
// cancellation with refund, completion by the tutor, tutor notes and
// video join tokens. Creating appointments lives in the booking usecase.
package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
	appointmentRepo "github.com/tutorlink/booking-service/internal/infra/storage/appointment"
	"github.com/tutorlink/booking-service/internal/integrations/videoprovider"
)

// Service сервис жизненного цикла записей на занятия
type Service struct {
	appointmentRepo AppointmentRepository
	accountRepo     AccountRepository
	ledger          Ledger
	videoClient     VideoClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	accountRepo AccountRepository,
	ledger Ledger,
	videoClient VideoClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		accountRepo:     accountRepo,
		ledger:          ledger,
		videoClient:     videoClient,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Cancel cancels a SCHEDULED appointment on behalf of either participant
// and refunds the 2 booking credits from the tutor back to the student.
// The status change and the refund commit in one transaction, so the
// slot is freed and the credits returned together or not at all.
func (s *Service) Cancel(ctx context.Context, appointmentID, actorID uuid.UUID) (*domain.Appointment, error) {
	appt, err := s.getForParticipant(ctx, appointmentID, actorID, "Cancel")
	if err != nil {
		return nil, err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment=%s has status=%s", appointmentID, appt.Status)
		return nil, ErrNotScheduled
	}

	refundKey := "cancel:" + appointmentID.String()

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.appointmentRepo.UpdateStatus(txCtx, appointmentID, domain.StatusCancelled); err != nil {
			return s.mapRepoErr("Cancel", appointmentID, err)
		}
		return s.ledger.Transfer(
			txCtx,
			appt.TutorID,
			appt.StudentID,
			domain.AppointmentCostCredits,
			domain.TxAppointmentDeduction,
			domain.TxAppointmentDeduction,
			&refundKey,
		)
	})
	if err != nil {
		s.logger.Error("Cancel: appointment=%s refund failed: %v", appointmentID, err)
		return nil, err
	}

	appt.Status = domain.StatusCancelled
	s.logger.Info("Cancel: appointment=%s cancelled by account=%s", appointmentID, actorID)
	return appt, nil
}

// Complete marks a SCHEDULED appointment COMPLETED. Only the tutor may
// complete, and only once the scheduled end time has passed: the credits
// already moved at booking time, completion is the tutor confirming the
// session happened.
func (s *Service) Complete(ctx context.Context, appointmentID, actorID uuid.UUID) (*domain.Appointment, error) {
	appt, err := s.getAppointment(ctx, appointmentID, "Complete")
	if err != nil {
		return nil, err
	}

	if appt.TutorID != actorID {
		s.logger.Warn("Complete: account=%s is not the tutor of appointment=%s", actorID, appointmentID)
		return nil, ErrNotTutor
	}

	if appt.Status != domain.StatusScheduled {
		return nil, ErrNotScheduled
	}

	now := s.timeProvider.Now()
	if !appt.CanBeCompleted(now) {
		s.logger.Warn("Complete: appointment=%s ends at %s, now is %s", appointmentID, appt.EndTime, now)
		return nil, ErrTooEarlyToComplete
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, domain.StatusCompleted); err != nil {
		return nil, s.mapRepoErr("Complete", appointmentID, err)
	}

	appt.Status = domain.StatusCompleted
	s.logger.Info("Complete: appointment=%s completed by tutor=%s", appointmentID, actorID)
	return appt, nil
}

// AddNotes stores the tutor's post-session notes on the appointment.
func (s *Service) AddNotes(ctx context.Context, appointmentID, actorID uuid.UUID, notes string) error {
	appt, err := s.getAppointment(ctx, appointmentID, "AddNotes")
	if err != nil {
		return err
	}

	if appt.TutorID != actorID {
		s.logger.Warn("AddNotes: account=%s is not the tutor of appointment=%s", actorID, appointmentID)
		return ErrNotTutor
	}

	if err := s.appointmentRepo.SetNotes(ctx, appointmentID, notes); err != nil {
		return s.mapRepoErr("AddNotes", appointmentID, err)
	}

	s.logger.Info("AddNotes: appointment=%s notes saved", appointmentID)
	return nil
}

// GetByUser returns the account's appointments, as student or tutor
// depending on its role, ordered by start time.
func (s *Service) GetByUser(ctx context.Context, accountID uuid.UUID) ([]*domain.Appointment, error) {
	acc, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		s.logger.Warn("GetByUser: account=%s lookup failed: %v", accountID, err)
		return nil, ErrAccountNotFound
	}

	appointments, err := s.appointmentRepo.ListByParticipant(ctx, accountID, acc.Role)
	if err != nil {
		s.logger.Error("GetByUser: repository error for account=%s: %v", accountID, err)
		return nil, fmt.Errorf("%w: GetByUser - repository error: %v", ErrInternal, err)
	}

	return appointments, nil
}

// GenerateVideoToken issues a join token for the appointment's video
// session. Tokens are available to participants only, no earlier than
// 30 minutes before the scheduled start, and expire an hour after the
// scheduled end. The token is persisted on the appointment so a retry
// close to start time returns a working token even if the provider
// briefly degrades.
func (s *Service) GenerateVideoToken(ctx context.Context, appointmentID, actorID uuid.UUID) (string, error) {
	appt, err := s.getForParticipant(ctx, appointmentID, actorID, "GenerateVideoToken")
	if err != nil {
		return "", err
	}

	if appt.Status != domain.StatusScheduled {
		return "", ErrNotScheduled
	}

	now := s.timeProvider.Now()
	joinOpensAt := appt.StartTime.Add(-domain.VideoJoinWindowMinutes * time.Minute)
	if now.Before(joinOpensAt) {
		s.logger.Warn("GenerateVideoToken: appointment=%s join window opens at %s", appointmentID, joinOpensAt)
		return "", ErrTooEarlyToJoin
	}

	token, err := s.videoClient.GenerateToken(ctx, videoprovider.TokenRequest{
		SessionID: appt.VideoSessionID,
		Role:      videoprovider.RolePublisher,
		ExpireAt:  videoprovider.ExpireAtFor(appt.EndTime.Add(time.Hour)),
		Data: map[string]string{
			"accountId":     actorID.String(),
			"appointmentId": appointmentID.String(),
		},
	})
	if err != nil {
		s.logger.Error("GenerateVideoToken: appointment=%s provider error: %v", appointmentID, err)
		return "", fmt.Errorf("%w: %v", ErrVideoToken, err)
	}

	if err := s.appointmentRepo.SetVideoToken(ctx, appointmentID, token); err != nil {
		// The token is already valid, losing the persisted copy is not fatal
		s.logger.Error("GenerateVideoToken: appointment=%s failed to persist token: %v", appointmentID, err)
	}

	s.logger.Info("GenerateVideoToken: appointment=%s token issued for account=%s", appointmentID, actorID)
	return token, nil
}

func (s *Service) getAppointment(ctx context.Context, appointmentID uuid.UUID, op string) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, s.mapRepoErr(op, appointmentID, err)
	}
	return appt, nil
}

func (s *Service) getForParticipant(ctx context.Context, appointmentID, actorID uuid.UUID, op string) (*domain.Appointment, error) {
	appt, err := s.getAppointment(ctx, appointmentID, op)
	if err != nil {
		return nil, err
	}
	if !appt.IsParticipant(actorID) {
		s.logger.Warn("%s: account=%s is not a participant of appointment=%s", op, actorID, appointmentID)
		return nil, ErrNotParticipant
	}
	return appt, nil
}

func (s *Service) mapRepoErr(op string, appointmentID uuid.UUID, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment=%s not found", op, appointmentID)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: repository error for appointment=%s: %v", op, appointmentID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
