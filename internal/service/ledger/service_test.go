package ledger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/booking-service/internal/domain"
	accountRepo "github.com/tutorlink/booking-service/internal/infra/storage/account"
	credittxRepo "github.com/tutorlink/booking-service/internal/infra/storage/credittx"
	"github.com/tutorlink/booking-service/internal/service/ledger"
	"github.com/tutorlink/booking-service/pkg/ptr"
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

type memAccountRepo struct {
	balances map[uuid.UUID]int64
}

func (r *memAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	credits, ok := r.balances[id]
	if !ok {
		return nil, accountRepo.ErrAccountNotFound
	}
	return &domain.Account{ID: id, Credits: credits}, nil
}

func (r *memAccountRepo) IncrementCredits(ctx context.Context, id uuid.UUID, amount int64) error {
	if _, ok := r.balances[id]; !ok {
		return accountRepo.ErrAccountNotFound
	}
	r.balances[id] += amount
	return nil
}

func (r *memAccountRepo) DecrementCredits(ctx context.Context, id uuid.UUID, amount int64) error {
	balance, ok := r.balances[id]
	if !ok {
		return accountRepo.ErrAccountNotFound
	}
	if balance < amount {
		return accountRepo.ErrInsufficientCredits
	}
	r.balances[id] = balance - amount
	return nil
}

type memTxRepo struct {
	rows []*domain.CreditTransaction
	keys map[string]bool
}

func (r *memTxRepo) Append(ctx context.Context, tx *domain.CreditTransaction) (*domain.CreditTransaction, error) {
	if tx.IdempotencyKey != nil {
		if r.keys[*tx.IdempotencyKey] {
			return nil, credittxRepo.ErrDuplicateTransaction
		}
		r.keys[*tx.IdempotencyKey] = true
	}
	tx.ID = uuid.New()
	r.rows = append(r.rows, tx)
	return tx, nil
}

func (r *memTxRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.CreditTransaction, error) {
	var out []*domain.CreditTransaction
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].AccountID == accountID {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

func (r *memTxRepo) SumByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var sum int64
	for _, row := range r.rows {
		if row.AccountID == accountID {
			sum += row.Amount
		}
	}
	return sum, nil
}

type fixture struct {
	accounts *memAccountRepo
	txRepo   *memTxRepo
	svc      *ledger.Service
	student  uuid.UUID
	tutor    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		accounts: &memAccountRepo{balances: map[uuid.UUID]int64{}},
		txRepo:   &memTxRepo{keys: map[string]bool{}},
		student:  uuid.New(),
		tutor:    uuid.New(),
	}
	f.accounts.balances[f.student] = 0
	f.accounts.balances[f.tutor] = 0
	f.svc = ledger.NewService(f.accounts, f.txRepo, passthroughTxManager{}, nopLogger{})
	return f
}

// =============================================================================
// CREDIT / DEBIT
// =============================================================================

func TestCredit_IncreasesBalanceAndAppendsRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.svc.Credit(ctx, f.student, 10, domain.TxPurchase, nil)
	require.NoError(t, err)

	balance, err := f.svc.Balance(ctx, f.student)
	require.NoError(t, err)
	assert.EqualValues(t, 10, balance)

	require.Len(t, f.txRepo.rows, 1)
	assert.EqualValues(t, 10, f.txRepo.rows[0].Amount)
	assert.Equal(t, domain.TxPurchase, f.txRepo.rows[0].Type)
}

func TestDebit_AppendsNegativeRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Credit(ctx, f.student, 10, domain.TxPurchase, nil))

	err := f.svc.Debit(ctx, f.student, 4, domain.TxAdminAdjustment, nil)
	require.NoError(t, err)

	balance, err := f.svc.Balance(ctx, f.student)
	require.NoError(t, err)
	assert.EqualValues(t, 6, balance)
	assert.EqualValues(t, -4, f.txRepo.rows[1].Amount)
}

func TestDebit_Underflow_Rejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Credit(ctx, f.student, 3, domain.TxPurchase, nil))

	err := f.svc.Debit(ctx, f.student, 5, domain.TxAdminAdjustment, nil)

	assert.ErrorIs(t, err, ledger.ErrInsufficientCredits)

	balance, err := f.svc.Balance(ctx, f.student)
	require.NoError(t, err)
	assert.EqualValues(t, 3, balance, "balance untouched after a rejected debit")
	assert.Len(t, f.txRepo.rows, 1, "no transaction appended for the failed debit")
}

func TestCredit_UnknownAccount_Rejected(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Credit(context.Background(), uuid.New(), 10, domain.TxPurchase, nil)

	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestCredit_InvalidInput_Rejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.Credit(ctx, f.student, 0, domain.TxPurchase, nil), ledger.ErrInvalidAmount)
	assert.ErrorIs(t, f.svc.Credit(ctx, f.student, -5, domain.TxPurchase, nil), ledger.ErrInvalidAmount)
	assert.ErrorIs(t, f.svc.Credit(ctx, f.student, 5, domain.TransactionType("BOGUS"), nil), ledger.ErrInvalidType)
}

// =============================================================================
// TRANSFER
// =============================================================================

func TestTransfer_MovesCreditsAtomically(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Credit(ctx, f.student, 10, domain.TxPurchase, nil))

	err := f.svc.Transfer(ctx, f.student, f.tutor, 2,
		domain.TxAppointmentDeduction, domain.TxAppointmentDeduction, ptr.Ptr("booking:x"))
	require.NoError(t, err)

	studentBalance, _ := f.svc.Balance(ctx, f.student)
	tutorBalance, _ := f.svc.Balance(ctx, f.tutor)
	assert.EqualValues(t, 8, studentBalance)
	assert.EqualValues(t, 2, tutorBalance)
}

func TestTransfer_KeysSuffixedPerLeg(t *testing.T) {
	// One client key must not collide between the debit and credit rows
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Credit(ctx, f.student, 10, domain.TxPurchase, nil))

	err := f.svc.Transfer(ctx, f.student, f.tutor, 2,
		domain.TxAppointmentDeduction, domain.TxAppointmentDeduction, ptr.Ptr("booking:x"))
	require.NoError(t, err)

	require.Len(t, f.txRepo.rows, 3)
	require.NotNil(t, f.txRepo.rows[1].IdempotencyKey)
	require.NotNil(t, f.txRepo.rows[2].IdempotencyKey)
	assert.Equal(t, "booking:x:debit", *f.txRepo.rows[1].IdempotencyKey)
	assert.Equal(t, "booking:x:credit", *f.txRepo.rows[2].IdempotencyKey)
}

func TestTransfer_InsufficientCredits_Rejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Credit(ctx, f.student, 1, domain.TxPurchase, nil))

	err := f.svc.Transfer(ctx, f.student, f.tutor, 2,
		domain.TxAppointmentDeduction, domain.TxAppointmentDeduction, nil)

	assert.ErrorIs(t, err, ledger.ErrInsufficientCredits)

	tutorBalance, _ := f.svc.Balance(ctx, f.tutor)
	assert.Zero(t, tutorBalance)
}

func TestTransfer_DuplicateKey_Rejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Credit(ctx, f.student, 10, domain.TxPurchase, nil))

	key := ptr.Ptr("booking:retry")
	require.NoError(t, f.svc.Transfer(ctx, f.student, f.tutor, 2,
		domain.TxAppointmentDeduction, domain.TxAppointmentDeduction, key))

	err := f.svc.Transfer(ctx, f.student, f.tutor, 2,
		domain.TxAppointmentDeduction, domain.TxAppointmentDeduction, key)

	assert.ErrorIs(t, err, ledger.ErrDuplicateTransaction)
}

// =============================================================================
// BALANCE AUDIT
// =============================================================================

func TestBalance_EqualsTransactionSum(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Credit(ctx, f.student, 10, domain.TxPurchase, nil))
	require.NoError(t, f.svc.Debit(ctx, f.student, 2, domain.TxAdminAdjustment, nil))
	require.NoError(t, f.svc.Transfer(ctx, f.student, f.tutor, 2,
		domain.TxAppointmentDeduction, domain.TxAppointmentDeduction, nil))

	for _, id := range []uuid.UUID{f.student, f.tutor} {
		balance, err := f.svc.Balance(ctx, id)
		require.NoError(t, err)
		sum, err := f.txRepo.SumByAccount(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, sum, balance)
	}
}

func TestHistory_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Credit(ctx, f.student, 10, domain.TxPurchase, nil))
	require.NoError(t, f.svc.Debit(ctx, f.student, 2, domain.TxAdminAdjustment, nil))

	history, err := f.svc.History(ctx, f.student)
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.EqualValues(t, -2, history[0].Amount)
	assert.EqualValues(t, 10, history[1].Amount)
}

func TestHistory_UnknownAccount_Rejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.History(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}
