// Package payouts implements tutor payout requests and their admin
// approval. A request only snapshots the dollar math; credits leave the
// tutor's balance when an admin approves, in the same transaction that
// marks the payout processed.
package payouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
	payoutRepo "github.com/tutorlink/booking-service/internal/infra/storage/payout"
	"github.com/tutorlink/booking-service/internal/service/ledger"
)

// Service сервис выплат тьюторам
type Service struct {
	payoutRepo      PayoutRepository
	accountRepo     AccountRepository
	appointmentRepo AppointmentRepository
	ledger          Ledger
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса выплат
func NewService(
	payoutRepo PayoutRepository,
	accountRepo AccountRepository,
	appointmentRepo AppointmentRepository,
	ledgerSvc Ledger,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		payoutRepo:      payoutRepo,
		accountRepo:     accountRepo,
		appointmentRepo: appointmentRepo,
		ledger:          ledgerSvc,
		txManager:       txManager,
		logger:          logger,
	}
}

// Request files a payout for the given number of credits. A tutor may
// hold at most one PROCESSING payout at a time, and cannot request more
// credits than the payable balance. Credits backing SCHEDULED
// appointments are not payable: they must stay on the balance so a
// cancellation can always refund the student. The dollar amounts are
// snapshotted at the fixed rate so a later rate change never rewrites
// history.
func (s *Service) Request(ctx context.Context, tutorID uuid.UUID, credits int64, paypalEmail string) (*domain.Payout, error) {
	if credits <= 0 {
		return nil, ErrInvalidAmount
	}
	if paypalEmail == "" {
		return nil, ErrPaypalEmailRequired
	}

	tutor, err := s.requireTutor(ctx, tutorID, "Request")
	if err != nil {
		return nil, err
	}

	reserved, err := s.reservedCredits(ctx, tutorID, "Request")
	if err != nil {
		return nil, err
	}

	if tutor.Credits-reserved < credits {
		s.logger.Warn("Request: tutor=%s has %d credits (%d reserved), requested %d",
			tutorID, tutor.Credits, reserved, credits)
		return nil, ErrInsufficientCredits
	}

	pending, err := s.payoutRepo.HasPending(ctx, tutorID)
	if err != nil {
		s.logger.Error("Request: pending check failed for tutor=%s: %v", tutorID, err)
		return nil, fmt.Errorf("%w: Request - repository error: %v", ErrInternal, err)
	}
	if pending {
		return nil, ErrPendingExists
	}

	payout, err := s.payoutRepo.Create(ctx, &domain.Payout{
		TutorID:     tutorID,
		Credits:     credits,
		Amount:      credits * domain.CreditValue,
		PlatformFee: credits * domain.PlatformFeePerCredit,
		NetAmount:   credits * domain.TutorEarningsPerCredit,
		PaypalEmail: paypalEmail,
		Status:      domain.PayoutProcessing,
	})
	if err != nil {
		s.logger.Error("Request: create failed for tutor=%s: %v", tutorID, err)
		return nil, fmt.Errorf("%w: Request - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Request: payout=%s tutor=%s credits=%d net=$%d", payout.ID, tutorID, credits, payout.NetAmount)
	return payout, nil
}

// Approve processes a pending payout. Admin only. Marking the payout
// processed and debiting the tutor's credits commit in one transaction;
// the debit is recorded as an ADMIN_ADJUSTMENT keyed by the payout id,
// so a double approval fails on both the status guard and the key.
func (s *Service) Approve(ctx context.Context, adminID, payoutID uuid.UUID) (*domain.Payout, error) {
	if err := s.requireAdmin(ctx, adminID, "Approve"); err != nil {
		return nil, err
	}

	payout, err := s.payoutRepo.GetByID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, payoutRepo.ErrPayoutNotFound) {
			return nil, ErrPayoutNotFound
		}
		s.logger.Error("Approve: payout=%s lookup failed: %v", payoutID, err)
		return nil, fmt.Errorf("%w: Approve - repository error: %v", ErrInternal, err)
	}

	if !payout.IsPending() {
		return nil, ErrAlreadyProcessed
	}

	debitKey := "payout:" + payoutID.String()

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.payoutRepo.MarkProcessed(txCtx, payoutID, adminID); err != nil {
			return err
		}
		return s.ledger.Debit(txCtx, payout.TutorID, payout.Credits, domain.TxAdminAdjustment, &debitKey)
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInsufficientCredits) {
			s.logger.Warn("Approve: payout=%s tutor=%s balance below payout credits", payoutID, payout.TutorID)
			return nil, ErrInsufficientCredits
		}
		s.logger.Error("Approve: payout=%s processing failed: %v", payoutID, err)
		return nil, fmt.Errorf("%w: Approve - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Approve: payout=%s processed by admin=%s", payoutID, adminID)
	return s.payoutRepo.GetByID(ctx, payoutID)
}

// History returns the tutor's payout requests, newest first.
func (s *Service) History(ctx context.Context, tutorID uuid.UUID) ([]*domain.Payout, error) {
	if _, err := s.requireTutor(ctx, tutorID, "History"); err != nil {
		return nil, err
	}

	payouts, err := s.payoutRepo.ListByTutor(ctx, tutorID)
	if err != nil {
		s.logger.Error("History: repository error for tutor=%s: %v", tutorID, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}
	return payouts, nil
}

// ListPending returns all payouts awaiting approval. Admin only.
func (s *Service) ListPending(ctx context.Context, adminID uuid.UUID) ([]*domain.Payout, error) {
	if err := s.requireAdmin(ctx, adminID, "ListPending"); err != nil {
		return nil, err
	}

	payouts, err := s.payoutRepo.ListPending(ctx)
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}
	return payouts, nil
}

// Earnings returns the tutor's earnings summary derived from the current
// credit balance and the payout history. Available figures count only
// payable credits, i.e. the balance minus credits reserved by SCHEDULED
// appointments.
func (s *Service) Earnings(ctx context.Context, tutorID uuid.UUID) (*Earnings, error) {
	tutor, err := s.requireTutor(ctx, tutorID, "Earnings")
	if err != nil {
		return nil, err
	}

	reserved, err := s.reservedCredits(ctx, tutorID, "Earnings")
	if err != nil {
		return nil, err
	}

	payouts, err := s.payoutRepo.ListByTutor(ctx, tutorID)
	if err != nil {
		s.logger.Error("Earnings: repository error for tutor=%s: %v", tutorID, err)
		return nil, fmt.Errorf("%w: Earnings - repository error: %v", ErrInternal, err)
	}

	available := tutor.Credits - reserved
	earnings := &Earnings{
		AvailableCredits: available,
		ReservedCredits:  reserved,
		GrossAmount:      available * domain.CreditValue,
		PlatformFee:      available * domain.PlatformFeePerCredit,
		NetAmount:        available * domain.TutorEarningsPerCredit,
	}

	for _, p := range payouts {
		if p.IsPending() {
			earnings.PendingCredits += p.Credits
		} else {
			earnings.TotalPaidOut += p.NetAmount
		}
	}

	return earnings, nil
}

// reservedCredits returns how many of the tutor's credits back
// SCHEDULED appointments. Each scheduled session holds its full cost on
// the balance so the refund on cancellation can never underflow.
func (s *Service) reservedCredits(ctx context.Context, tutorID uuid.UUID, op string) (int64, error) {
	scheduled, err := s.appointmentRepo.CountScheduledByTutor(ctx, tutorID)
	if err != nil {
		s.logger.Error("%s: scheduled count failed for tutor=%s: %v", op, tutorID, err)
		return 0, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return scheduled * domain.AppointmentCostCredits, nil
}

func (s *Service) requireTutor(ctx context.Context, tutorID uuid.UUID, op string) (*domain.Account, error) {
	acc, err := s.accountRepo.GetByID(ctx, tutorID)
	if err != nil {
		s.logger.Warn("%s: account=%s lookup failed: %v", op, tutorID, err)
		return nil, ErrAccountNotFound
	}
	if acc.Role != domain.RoleTutor {
		s.logger.Warn("%s: account=%s is not a tutor", op, tutorID)
		return nil, ErrNotTutor
	}
	return acc, nil
}

func (s *Service) requireAdmin(ctx context.Context, adminID uuid.UUID, op string) error {
	admin, err := s.accountRepo.GetByID(ctx, adminID)
	if err != nil {
		s.logger.Warn("%s: account=%s lookup failed: %v", op, adminID, err)
		return ErrAccountNotFound
	}
	if admin.Role != domain.RoleAdmin {
		s.logger.Warn("%s: account=%s is not an admin", op, adminID)
		return ErrNotAdmin
	}
	return nil
}
