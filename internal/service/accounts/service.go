package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
	accountRepo "github.com/tutorlink/booking-service/internal/infra/storage/account"
	"github.com/tutorlink/booking-service/pkg/ptr"
)

// Service сервис управления аккаунтами
type Service struct {
	accountRepo AccountRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса аккаунтов
func NewService(accountRepo AccountRepository, logger Logger) *Service {
	return &Service{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Register creates an account. Everyone starts as a STUDENT with a zero
// balance; the role is chosen once during onboarding via SetRole.
func (s *Service) Register(ctx context.Context, name, email string) (*domain.Account, error) {
	acc, err := s.accountRepo.Create(ctx, &domain.Account{
		Name:               name,
		Email:              email,
		Role:               domain.RoleStudent,
		VerificationStatus: domain.VerificationPending,
	})
	if err != nil {
		if errors.Is(err, accountRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: email=%s already registered", email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Register: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: account=%s created", acc.ID)
	return acc, nil
}

// GetByID получает аккаунт по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	acc, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoErr("GetByID", id, err)
	}
	return acc, nil
}

// SetRole finishes onboarding. Choosing TUTOR requires the profile
// fields and leaves the account PENDING until an admin verifies it; a
// pending tutor cannot be booked.
func (s *Service) SetRole(ctx context.Context, id uuid.UUID, role domain.Role, profile *TutorProfile) (*domain.Account, error) {
	if role != domain.RoleStudent && role != domain.RoleTutor {
		return nil, ErrInvalidRole
	}

	acc, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoErr("SetRole", id, err)
	}

	if acc.Role == domain.RoleTutor || acc.Role == domain.RoleAdmin {
		s.logger.Warn("SetRole: account=%s already has role=%s", id, acc.Role)
		return nil, ErrRoleAlreadySet
	}

	acc.Role = role
	if role == domain.RoleTutor {
		if !profile.complete() {
			return nil, ErrProfileRequired
		}
		acc.VerificationStatus = domain.VerificationPending
		acc.Specialty = ptr.Ptr(profile.Specialty)
		acc.Experience = ptr.Ptr(profile.Experience)
		acc.CredentialURL = ptr.Ptr(profile.CredentialURL)
		if profile.Description != "" {
			acc.Description = ptr.Ptr(profile.Description)
		}
	}

	if err := s.accountRepo.UpdateProfile(ctx, acc); err != nil {
		return nil, s.mapRepoErr("SetRole", id, err)
	}

	s.logger.Info("SetRole: account=%s role=%s", id, role)
	return acc, nil
}

// UpdateVerification approves or rejects a pending tutor. Admin only.
func (s *Service) UpdateVerification(ctx context.Context, adminID, tutorID uuid.UUID, status domain.VerificationStatus) error {
	if status != domain.VerificationVerified && status != domain.VerificationRejected {
		return ErrInvalidStatus
	}

	if err := s.requireAdmin(ctx, adminID, "UpdateVerification"); err != nil {
		return err
	}

	err := s.accountRepo.UpdateVerification(ctx, tutorID, status)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			// The guarded update matches role=TUTOR, so a miss can also
			// mean the account exists but is not a tutor.
			if _, getErr := s.accountRepo.GetByID(ctx, tutorID); getErr == nil {
				return ErrNotTutor
			}
			return ErrAccountNotFound
		}
		return s.mapRepoErr("UpdateVerification", tutorID, err)
	}

	s.logger.Info("UpdateVerification: tutor=%s status=%s by admin=%s", tutorID, status, adminID)
	return nil
}

// ListTutors returns VERIFIED tutors, optionally filtered by specialty.
func (s *Service) ListTutors(ctx context.Context, specialty *string) ([]*domain.Account, error) {
	tutors, err := s.accountRepo.ListTutors(ctx, domain.VerificationVerified, specialty)
	if err != nil {
		s.logger.Error("ListTutors: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTutors - repository error: %v", ErrInternal, err)
	}
	return tutors, nil
}

// ListPendingTutors returns tutors awaiting verification. Admin only.
func (s *Service) ListPendingTutors(ctx context.Context, adminID uuid.UUID) ([]*domain.Account, error) {
	if err := s.requireAdmin(ctx, adminID, "ListPendingTutors"); err != nil {
		return nil, err
	}

	tutors, err := s.accountRepo.ListTutors(ctx, domain.VerificationPending, nil)
	if err != nil {
		s.logger.Error("ListPendingTutors: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPendingTutors - repository error: %v", ErrInternal, err)
	}
	return tutors, nil
}

func (s *Service) requireAdmin(ctx context.Context, adminID uuid.UUID, op string) error {
	admin, err := s.accountRepo.GetByID(ctx, adminID)
	if err != nil {
		return s.mapRepoErr(op, adminID, err)
	}
	if admin.Role != domain.RoleAdmin {
		s.logger.Warn("%s: account=%s is not an admin", op, adminID)
		return ErrNotAdmin
	}
	return nil
}

func (s *Service) mapRepoErr(op string, id uuid.UUID, err error) error {
	if errors.Is(err, accountRepo.ErrAccountNotFound) {
		s.logger.Warn("%s: account=%s not found", op, id)
		return ErrAccountNotFound
	}
	s.logger.Error("%s: repository error for account=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
