// Package ledger implements the credit ledger: every balance change is
// an account update plus an appended transaction row, committed
// together, so the balance always equals the sum of the account's
// transactions.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
	accountRepo "github.com/tutorlink/booking-service/internal/infra/storage/account"
	credittxRepo "github.com/tutorlink/booking-service/internal/infra/storage/credittx"
)

// Service сервис кредитного леджера
type Service struct {
	accountRepo AccountRepository
	txRepo      TransactionRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса леджера
func NewService(
	accountRepo AccountRepository,
	txRepo TransactionRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Credit adds amount credits to the account and appends a positive
// transaction. Fails only on an unknown account or invalid input.
func (s *Service) Credit(ctx context.Context, accountID uuid.UUID, amount int64, txType domain.TransactionType, key *string) error {
	if err := validate(amount, txType); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.accountRepo.IncrementCredits(txCtx, accountID, amount); err != nil {
			return s.mapAccountErr("Credit", accountID, err)
		}
		return s.append(txCtx, accountID, amount, txType, key)
	})

	if err == nil {
		s.logger.Info("Credit: account=%s amount=%d type=%s", accountID, amount, txType)
	}
	return err
}

// Debit removes amount credits from the account and appends a negative
// transaction. Fails with ErrInsufficientCredits, leaving the balance
// untouched, when the account holds less than amount.
func (s *Service) Debit(ctx context.Context, accountID uuid.UUID, amount int64, txType domain.TransactionType, key *string) error {
	if err := validate(amount, txType); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.accountRepo.DecrementCredits(txCtx, accountID, amount); err != nil {
			return s.mapAccountErr("Debit", accountID, err)
		}
		return s.append(txCtx, accountID, -amount, txType, key)
	})

	if err == nil {
		s.logger.Info("Debit: account=%s amount=%d type=%s", accountID, amount, txType)
	}
	return err
}

// Transfer moves amount credits from one account to another as a single
// atomic unit: the debit, the credit and both transaction rows commit
// together or not at all.
func (s *Service) Transfer(
	ctx context.Context,
	fromID, toID uuid.UUID,
	amount int64,
	debitType, creditType domain.TransactionType,
	key *string,
) error {
	if err := validate(amount, debitType); err != nil {
		return err
	}
	if err := validate(amount, creditType); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.accountRepo.DecrementCredits(txCtx, fromID, amount); err != nil {
			return s.mapAccountErr("Transfer", fromID, err)
		}
		if err := s.append(txCtx, fromID, -amount, debitType, suffixKey(key, "debit")); err != nil {
			return err
		}
		if err := s.accountRepo.IncrementCredits(txCtx, toID, amount); err != nil {
			return s.mapAccountErr("Transfer", toID, err)
		}
		return s.append(txCtx, toID, amount, creditType, suffixKey(key, "credit"))
	})

	if err == nil {
		s.logger.Info("Transfer: from=%s to=%s amount=%d", fromID, toID, amount)
	}
	return err
}

// Balance returns the account's current credit balance. When the
// transaction log disagrees with the stored balance, the mismatch is
// logged: that indicates a write path bypassed the ledger.
func (s *Service) Balance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	acc, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return 0, s.mapAccountErr("Balance", accountID, err)
	}

	sum, err := s.txRepo.SumByAccount(ctx, accountID)
	if err != nil {
		s.logger.Error("Balance: failed to audit transaction sum for account=%s: %v", accountID, err)
	} else if sum != acc.Credits {
		s.logger.Error("Balance: ledger mismatch for account=%s: balance=%d sum=%d", accountID, acc.Credits, sum)
	}

	return acc.Credits, nil
}

// History returns the account's transaction log, newest first.
func (s *Service) History(ctx context.Context, accountID uuid.UUID) ([]*domain.CreditTransaction, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, s.mapAccountErr("History", accountID, err)
	}

	transactions, err := s.txRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	return transactions, nil
}

func (s *Service) append(ctx context.Context, accountID uuid.UUID, amount int64, txType domain.TransactionType, key *string) error {
	_, err := s.txRepo.Append(ctx, &domain.CreditTransaction{
		AccountID:      accountID,
		Amount:         amount,
		Type:           txType,
		IdempotencyKey: key,
	})
	if err != nil {
		if errors.Is(err, credittxRepo.ErrDuplicateTransaction) {
			s.logger.Warn("append: duplicate transaction for account=%s", accountID)
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("%w: failed to append transaction: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) mapAccountErr(op string, accountID uuid.UUID, err error) error {
	switch {
	case errors.Is(err, accountRepo.ErrAccountNotFound):
		s.logger.Warn("%s: account=%s not found", op, accountID)
		return ErrAccountNotFound
	case errors.Is(err, accountRepo.ErrInsufficientCredits):
		s.logger.Warn("%s: account=%s has insufficient credits", op, accountID)
		return ErrInsufficientCredits
	default:
		s.logger.Error("%s: repository error for account=%s: %v", op, accountID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

func validate(amount int64, txType domain.TransactionType) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !txType.Valid() {
		return ErrInvalidType
	}
	return nil
}

func suffixKey(key *string, suffix string) *string {
	if key == nil {
		return nil
	}
	k := *key + ":" + suffix
	return &k
}
