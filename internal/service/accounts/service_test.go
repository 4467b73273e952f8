package accounts_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/booking-service/internal/domain"
	accountRepo "github.com/tutorlink/booking-service/internal/infra/storage/account"
	"github.com/tutorlink/booking-service/internal/service/accounts"
)

// =============================================================================
// TEST SETUP
// =============================================================================

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type memAccountRepo struct {
	accounts map[uuid.UUID]*domain.Account
	emails   map[string]bool
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{
		accounts: map[uuid.UUID]*domain.Account{},
		emails:   map[string]bool{},
	}
}

func (r *memAccountRepo) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	if r.emails[acc.Email] {
		return nil, accountRepo.ErrDuplicateEmail
	}
	acc.ID = uuid.New()
	r.accounts[acc.ID] = acc
	r.emails[acc.Email] = true
	return acc, nil
}

func (r *memAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	acc, ok := r.accounts[id]
	if !ok {
		return nil, accountRepo.ErrAccountNotFound
	}
	return acc, nil
}

func (r *memAccountRepo) UpdateProfile(ctx context.Context, acc *domain.Account) error {
	if _, ok := r.accounts[acc.ID]; !ok {
		return accountRepo.ErrAccountNotFound
	}
	r.accounts[acc.ID] = acc
	return nil
}

func (r *memAccountRepo) UpdateVerification(ctx context.Context, id uuid.UUID, status domain.VerificationStatus) error {
	acc, ok := r.accounts[id]
	// Mirrors the guarded UPDATE: only rows with role=TUTOR match
	if !ok || acc.Role != domain.RoleTutor {
		return accountRepo.ErrAccountNotFound
	}
	acc.VerificationStatus = status
	return nil
}

func (r *memAccountRepo) ListTutors(ctx context.Context, status domain.VerificationStatus, specialty *string) ([]*domain.Account, error) {
	var out []*domain.Account
	for _, acc := range r.accounts {
		if acc.Role != domain.RoleTutor || acc.VerificationStatus != status {
			continue
		}
		if specialty != nil && (acc.Specialty == nil || *acc.Specialty != *specialty) {
			continue
		}
		out = append(out, acc)
	}
	return out, nil
}

type fixture struct {
	repo *memAccountRepo
	svc  *accounts.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newMemAccountRepo()
	return &fixture{repo: repo, svc: accounts.NewService(repo, nopLogger{})}
}

func (f *fixture) register(t *testing.T, name, email string) *domain.Account {
	t.Helper()
	acc, err := f.svc.Register(context.Background(), name, email)
	require.NoError(t, err)
	return acc
}

func (f *fixture) admin(t *testing.T) *domain.Account {
	t.Helper()
	acc := f.register(t, "Admin", "admin@tutorlink.io")
	acc.Role = domain.RoleAdmin
	return acc
}

func profile() *accounts.TutorProfile {
	return &accounts.TutorProfile{
		Specialty:     "math",
		Experience:    "5 years teaching calculus",
		CredentialURL: "https://example.com/diploma.pdf",
	}
}

// =============================================================================
// REGISTRATION
// =============================================================================

func TestRegister_DefaultsToStudent(t *testing.T) {
	f := newFixture(t)

	acc := f.register(t, "Alice", "alice@example.com")

	assert.Equal(t, domain.RoleStudent, acc.Role)
	assert.Zero(t, acc.Credits)
	assert.Equal(t, domain.VerificationPending, acc.VerificationStatus)
}

func TestRegister_DuplicateEmail_Rejected(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Alice", "alice@example.com")

	_, err := f.svc.Register(context.Background(), "Another Alice", "alice@example.com")

	assert.ErrorIs(t, err, accounts.ErrDuplicateEmail)
}

// =============================================================================
// ONBOARDING
// =============================================================================

func TestSetRole_Tutor_RequiresCompleteProfile(t *testing.T) {
	f := newFixture(t)
	acc := f.register(t, "Bob", "bob@example.com")

	_, err := f.svc.SetRole(context.Background(), acc.ID, domain.RoleTutor, &accounts.TutorProfile{
		Specialty: "math", // no experience, no credential
	})

	assert.ErrorIs(t, err, accounts.ErrProfileRequired)
}

func TestSetRole_Tutor_StartsPending(t *testing.T) {
	f := newFixture(t)
	acc := f.register(t, "Bob", "bob@example.com")

	updated, err := f.svc.SetRole(context.Background(), acc.ID, domain.RoleTutor, profile())
	require.NoError(t, err)

	assert.Equal(t, domain.RoleTutor, updated.Role)
	assert.Equal(t, domain.VerificationPending, updated.VerificationStatus)
	assert.False(t, updated.IsVerifiedTutor(), "pending tutor cannot be booked")
	require.NotNil(t, updated.Specialty)
	assert.Equal(t, "math", *updated.Specialty)
}

func TestSetRole_Student_NoProfileNeeded(t *testing.T) {
	f := newFixture(t)
	acc := f.register(t, "Carol", "carol@example.com")

	updated, err := f.svc.SetRole(context.Background(), acc.ID, domain.RoleStudent, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.RoleStudent, updated.Role)
}

func TestSetRole_Twice_Rejected(t *testing.T) {
	f := newFixture(t)
	acc := f.register(t, "Bob", "bob@example.com")
	_, err := f.svc.SetRole(context.Background(), acc.ID, domain.RoleTutor, profile())
	require.NoError(t, err)

	_, err = f.svc.SetRole(context.Background(), acc.ID, domain.RoleStudent, nil)

	assert.ErrorIs(t, err, accounts.ErrRoleAlreadySet)
}

func TestSetRole_Admin_Rejected(t *testing.T) {
	f := newFixture(t)
	acc := f.register(t, "Mallory", "mallory@example.com")

	_, err := f.svc.SetRole(context.Background(), acc.ID, domain.RoleAdmin, nil)

	assert.ErrorIs(t, err, accounts.ErrInvalidRole)
}

// =============================================================================
// VERIFICATION
// =============================================================================

func TestUpdateVerification_AdminApprovesTutor(t *testing.T) {
	f := newFixture(t)
	admin := f.admin(t)
	tutor := f.register(t, "Bob", "bob@example.com")
	_, err := f.svc.SetRole(context.Background(), tutor.ID, domain.RoleTutor, profile())
	require.NoError(t, err)

	err = f.svc.UpdateVerification(context.Background(), admin.ID, tutor.ID, domain.VerificationVerified)
	require.NoError(t, err)

	updated, err := f.svc.GetByID(context.Background(), tutor.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsVerifiedTutor())
}

func TestUpdateVerification_ByNonAdmin_Forbidden(t *testing.T) {
	f := newFixture(t)
	student := f.register(t, "Alice", "alice@example.com")
	tutor := f.register(t, "Bob", "bob@example.com")
	_, err := f.svc.SetRole(context.Background(), tutor.ID, domain.RoleTutor, profile())
	require.NoError(t, err)

	err = f.svc.UpdateVerification(context.Background(), student.ID, tutor.ID, domain.VerificationVerified)

	assert.ErrorIs(t, err, accounts.ErrNotAdmin)
}

func TestUpdateVerification_TargetNotTutor(t *testing.T) {
	f := newFixture(t)
	admin := f.admin(t)
	student := f.register(t, "Alice", "alice@example.com")

	err := f.svc.UpdateVerification(context.Background(), admin.ID, student.ID, domain.VerificationVerified)

	assert.ErrorIs(t, err, accounts.ErrNotTutor)
}

func TestUpdateVerification_UnknownTarget(t *testing.T) {
	f := newFixture(t)
	admin := f.admin(t)

	err := f.svc.UpdateVerification(context.Background(), admin.ID, uuid.New(), domain.VerificationRejected)

	assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
}

func TestUpdateVerification_InvalidStatus(t *testing.T) {
	f := newFixture(t)
	admin := f.admin(t)

	err := f.svc.UpdateVerification(context.Background(), admin.ID, uuid.New(), domain.VerificationPending)

	assert.ErrorIs(t, err, accounts.ErrInvalidStatus)
}

// =============================================================================
// CATALOG
// =============================================================================

func TestListTutors_OnlyVerified(t *testing.T) {
	f := newFixture(t)
	admin := f.admin(t)
	ctx := context.Background()

	verified := f.register(t, "Bob", "bob@example.com")
	_, err := f.svc.SetRole(ctx, verified.ID, domain.RoleTutor, profile())
	require.NoError(t, err)
	require.NoError(t, f.svc.UpdateVerification(ctx, admin.ID, verified.ID, domain.VerificationVerified))

	pending := f.register(t, "Carol", "carol@example.com")
	_, err = f.svc.SetRole(ctx, pending.ID, domain.RoleTutor, profile())
	require.NoError(t, err)

	tutors, err := f.svc.ListTutors(ctx, nil)
	require.NoError(t, err)

	require.Len(t, tutors, 1)
	assert.Equal(t, verified.ID, tutors[0].ID)
}

func TestListPendingTutors_AdminOnly(t *testing.T) {
	f := newFixture(t)
	admin := f.admin(t)
	ctx := context.Background()

	tutor := f.register(t, "Carol", "carol@example.com")
	_, err := f.svc.SetRole(ctx, tutor.ID, domain.RoleTutor, profile())
	require.NoError(t, err)

	pending, err := f.svc.ListPendingTutors(ctx, admin.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = f.svc.ListPendingTutors(ctx, tutor.ID)
	assert.ErrorIs(t, err, accounts.ErrNotAdmin)
}
