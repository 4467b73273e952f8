package payouts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/booking-service/internal/domain"
	payoutRepo "github.com/tutorlink/booking-service/internal/infra/storage/payout"
	"github.com/tutorlink/booking-service/internal/service/ledger"
	"github.com/tutorlink/booking-service/internal/service/payouts"
)

// =============================================================================
// TEST SETUP
// =============================================================================

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*domain.Account
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	acc, ok := r.accounts[id]
	if !ok {
		return nil, errors.New("account not found")
	}
	return acc, nil
}

type fakeAppointmentRepo struct {
	scheduled map[uuid.UUID]int64
}

func (r *fakeAppointmentRepo) CountScheduledByTutor(ctx context.Context, tutorID uuid.UUID) (int64, error) {
	return r.scheduled[tutorID], nil
}

type memPayoutRepo struct {
	payouts map[uuid.UUID]*domain.Payout
}

func (r *memPayoutRepo) Create(ctx context.Context, p *domain.Payout) (*domain.Payout, error) {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	r.payouts[p.ID] = p
	return p, nil
}

func (r *memPayoutRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payout, error) {
	p, ok := r.payouts[id]
	if !ok {
		return nil, payoutRepo.ErrPayoutNotFound
	}
	return p, nil
}

func (r *memPayoutRepo) HasPending(ctx context.Context, tutorID uuid.UUID) (bool, error) {
	for _, p := range r.payouts {
		if p.TutorID == tutorID && p.IsPending() {
			return true, nil
		}
	}
	return false, nil
}

func (r *memPayoutRepo) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]*domain.Payout, error) {
	var out []*domain.Payout
	for _, p := range r.payouts {
		if p.TutorID == tutorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPayoutRepo) ListPending(ctx context.Context) ([]*domain.Payout, error) {
	var out []*domain.Payout
	for _, p := range r.payouts {
		if p.IsPending() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPayoutRepo) MarkProcessed(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error {
	p, ok := r.payouts[id]
	if !ok {
		return payoutRepo.ErrPayoutNotFound
	}
	now := time.Now()
	p.Status = domain.PayoutProcessed
	p.ProcessedBy = &adminID
	p.ProcessedAt = &now
	return nil
}

type debitCall struct {
	accountID uuid.UUID
	amount    int64
	txType    domain.TransactionType
	key       *string
}

type fakeLedger struct {
	calls []debitCall
	err   error
}

func (l *fakeLedger) Debit(ctx context.Context, accountID uuid.UUID, amount int64, txType domain.TransactionType, key *string) error {
	if l.err != nil {
		return l.err
	}
	l.calls = append(l.calls, debitCall{accountID, amount, txType, key})
	return nil
}

type fixture struct {
	tutorID uuid.UUID
	adminID uuid.UUID

	accounts     *fakeAccountRepo
	appointments *fakeAppointmentRepo
	repo         *memPayoutRepo
	ledger       *fakeLedger
	svc          *payouts.Service
}

// newFixture wires a tutor holding 20 credits, no scheduled
// appointments, and an admin.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		tutorID:      uuid.New(),
		adminID:      uuid.New(),
		appointments: &fakeAppointmentRepo{scheduled: map[uuid.UUID]int64{}},
		repo:         &memPayoutRepo{payouts: map[uuid.UUID]*domain.Payout{}},
		ledger:       &fakeLedger{},
	}
	f.accounts = &fakeAccountRepo{accounts: map[uuid.UUID]*domain.Account{
		f.tutorID: {ID: f.tutorID, Role: domain.RoleTutor, Credits: 20},
		f.adminID: {ID: f.adminID, Role: domain.RoleAdmin},
	}}
	f.svc = payouts.NewService(f.repo, f.accounts, f.appointments, f.ledger, passthroughTxManager{}, nopLogger{})
	return f
}

// =============================================================================
// REQUEST
// =============================================================================

func TestRequest_SnapshotsDollarAmounts(t *testing.T) {
	f := newFixture(t)

	payout, err := f.svc.Request(context.Background(), f.tutorID, 5, "tutor@example.com")
	require.NoError(t, err)

	// 5 credits: $50 gross, $10 fee, $40 net
	assert.EqualValues(t, 5, payout.Credits)
	assert.EqualValues(t, 50, payout.Amount)
	assert.EqualValues(t, 10, payout.PlatformFee)
	assert.EqualValues(t, 40, payout.NetAmount)
	assert.Equal(t, domain.PayoutProcessing, payout.Status)
	assert.Empty(t, f.ledger.calls, "credits stay until approval")
}

func TestRequest_MoreThanBalance_Rejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Request(context.Background(), f.tutorID, 21, "tutor@example.com")

	assert.ErrorIs(t, err, payouts.ErrInsufficientCredits)
}

func TestRequest_ReservedCredits_NotPayable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 3 scheduled appointments reserve 6 of the 20 credits: a later
	// cancellation must still find them on the balance for the refund.
	f.appointments.scheduled[f.tutorID] = 3

	_, err := f.svc.Request(ctx, f.tutorID, 15, "tutor@example.com")
	assert.ErrorIs(t, err, payouts.ErrInsufficientCredits)

	payout, err := f.svc.Request(ctx, f.tutorID, 14, "tutor@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 14, payout.Credits)
}

func TestRequest_WholeBalanceReserved_Rejected(t *testing.T) {
	f := newFixture(t)

	// Balance of 2 backs a single scheduled appointment
	f.accounts.accounts[f.tutorID].Credits = 2
	f.appointments.scheduled[f.tutorID] = 1

	_, err := f.svc.Request(context.Background(), f.tutorID, 2, "tutor@example.com")

	assert.ErrorIs(t, err, payouts.ErrInsufficientCredits)
}

func TestRequest_SecondPendingPayout_Rejected(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Request(context.Background(), f.tutorID, 5, "tutor@example.com")
	require.NoError(t, err)

	_, err = f.svc.Request(context.Background(), f.tutorID, 3, "tutor@example.com")

	assert.ErrorIs(t, err, payouts.ErrPendingExists)
}

func TestRequest_InvalidInput_Rejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Request(ctx, f.tutorID, 0, "tutor@example.com")
	assert.ErrorIs(t, err, payouts.ErrInvalidAmount)

	_, err = f.svc.Request(ctx, f.tutorID, 5, "")
	assert.ErrorIs(t, err, payouts.ErrPaypalEmailRequired)
}

func TestRequest_ByNonTutor_Rejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Request(context.Background(), f.adminID, 5, "admin@example.com")

	assert.ErrorIs(t, err, payouts.ErrNotTutor)
}

// =============================================================================
// APPROVE
// =============================================================================

func TestApprove_DebitsCreditsAndMarksProcessed(t *testing.T) {
	f := newFixture(t)
	payout, err := f.svc.Request(context.Background(), f.tutorID, 5, "tutor@example.com")
	require.NoError(t, err)

	approved, err := f.svc.Approve(context.Background(), f.adminID, payout.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.PayoutProcessed, approved.Status)
	require.NotNil(t, approved.ProcessedBy)
	assert.Equal(t, f.adminID, *approved.ProcessedBy)
	assert.NotNil(t, approved.ProcessedAt)

	require.Len(t, f.ledger.calls, 1)
	call := f.ledger.calls[0]
	assert.Equal(t, f.tutorID, call.accountID)
	assert.EqualValues(t, 5, call.amount)
	assert.Equal(t, domain.TxAdminAdjustment, call.txType)
	require.NotNil(t, call.key)
	assert.Equal(t, "payout:"+payout.ID.String(), *call.key)
}

func TestApprove_Twice_Rejected(t *testing.T) {
	f := newFixture(t)
	payout, err := f.svc.Request(context.Background(), f.tutorID, 5, "tutor@example.com")
	require.NoError(t, err)
	_, err = f.svc.Approve(context.Background(), f.adminID, payout.ID)
	require.NoError(t, err)

	_, err = f.svc.Approve(context.Background(), f.adminID, payout.ID)

	assert.ErrorIs(t, err, payouts.ErrAlreadyProcessed)
	assert.Len(t, f.ledger.calls, 1, "credits debited once")
}

func TestApprove_ByTutor_Forbidden(t *testing.T) {
	f := newFixture(t)
	payout, err := f.svc.Request(context.Background(), f.tutorID, 5, "tutor@example.com")
	require.NoError(t, err)

	_, err = f.svc.Approve(context.Background(), f.tutorID, payout.ID)

	assert.ErrorIs(t, err, payouts.ErrNotAdmin)
}

func TestApprove_BalanceDroppedBelowPayout_Rejected(t *testing.T) {
	// The tutor spent credits between request and approval; the ledger
	// refuses the debit and the payout must stay pending.
	f := newFixture(t)
	payout, err := f.svc.Request(context.Background(), f.tutorID, 5, "tutor@example.com")
	require.NoError(t, err)
	f.ledger.err = ledger.ErrInsufficientCredits

	_, err = f.svc.Approve(context.Background(), f.adminID, payout.ID)

	assert.ErrorIs(t, err, payouts.ErrInsufficientCredits)
}

func TestApprove_UnknownPayout(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Approve(context.Background(), f.adminID, uuid.New())

	assert.ErrorIs(t, err, payouts.ErrPayoutNotFound)
}

// =============================================================================
// EARNINGS
// =============================================================================

func TestEarnings_DerivedFromBalance(t *testing.T) {
	f := newFixture(t)

	earnings, err := f.svc.Earnings(context.Background(), f.tutorID)
	require.NoError(t, err)

	// 20 credits: $200 gross, $40 fee, $160 net
	assert.EqualValues(t, 20, earnings.AvailableCredits)
	assert.EqualValues(t, 200, earnings.GrossAmount)
	assert.EqualValues(t, 40, earnings.PlatformFee)
	assert.EqualValues(t, 160, earnings.NetAmount)
	assert.Zero(t, earnings.TotalPaidOut)
	assert.Zero(t, earnings.PendingCredits)
}

func TestEarnings_AccountsForPayouts(t *testing.T) {
	f := newFixture(t)

	// One processed payout of 5 credits, then a pending one of 3
	first, err := f.svc.Request(context.Background(), f.tutorID, 5, "tutor@example.com")
	require.NoError(t, err)
	_, err = f.svc.Approve(context.Background(), f.adminID, first.ID)
	require.NoError(t, err)
	_, err = f.svc.Request(context.Background(), f.tutorID, 3, "tutor@example.com")
	require.NoError(t, err)

	earnings, err := f.svc.Earnings(context.Background(), f.tutorID)
	require.NoError(t, err)

	assert.EqualValues(t, 40, earnings.TotalPaidOut, "net of the processed payout")
	assert.EqualValues(t, 3, earnings.PendingCredits)
}

func TestEarnings_ExcludesReservedCredits(t *testing.T) {
	f := newFixture(t)

	// 2 scheduled appointments reserve 4 credits, leaving 16 payable
	f.appointments.scheduled[f.tutorID] = 2

	earnings, err := f.svc.Earnings(context.Background(), f.tutorID)
	require.NoError(t, err)

	assert.EqualValues(t, 16, earnings.AvailableCredits)
	assert.EqualValues(t, 4, earnings.ReservedCredits)
	assert.EqualValues(t, 160, earnings.GrossAmount)
	assert.EqualValues(t, 32, earnings.PlatformFee)
	assert.EqualValues(t, 128, earnings.NetAmount)
}

// =============================================================================
// LISTING
// =============================================================================

func TestListPending_AdminOnly(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Request(context.Background(), f.tutorID, 5, "tutor@example.com")
	require.NoError(t, err)

	pending, err := f.svc.ListPending(context.Background(), f.adminID)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = f.svc.ListPending(context.Background(), f.tutorID)
	assert.ErrorIs(t, err, payouts.ErrNotAdmin)
}

func TestHistory_TutorOnly(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Request(context.Background(), f.tutorID, 5, "tutor@example.com")
	require.NoError(t, err)

	history, err := f.svc.History(context.Background(), f.tutorID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, err = f.svc.History(context.Background(), f.adminID)
	assert.ErrorIs(t, err, payouts.ErrNotTutor)
}
