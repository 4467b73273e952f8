package availability_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/booking-service/internal/domain"
	accountRepo "github.com/tutorlink/booking-service/internal/infra/storage/account"
	availabilityRepo "github.com/tutorlink/booking-service/internal/infra/storage/availability"
	"github.com/tutorlink/booking-service/internal/service/availability"
	"github.com/tutorlink/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*domain.Account
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	acc, ok := r.accounts[id]
	if !ok {
		return nil, accountRepo.ErrAccountNotFound
	}
	return acc, nil
}

type memWindowRepo struct {
	windows map[uuid.UUID]*domain.AvailabilityWindow
}

func (r *memWindowRepo) Upsert(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	if existing, ok := r.windows[window.TutorID]; ok {
		window.ID = existing.ID
	} else {
		window.ID = uuid.New()
	}
	r.windows[window.TutorID] = window
	return window, nil
}

func (r *memWindowRepo) GetByTutor(ctx context.Context, tutorID uuid.UUID) (*domain.AvailabilityWindow, error) {
	window, ok := r.windows[tutorID]
	if !ok {
		return nil, availabilityRepo.ErrWindowNotFound
	}
	return window, nil
}

type fixture struct {
	tutorID   uuid.UUID
	studentID uuid.UUID
	windows   *memWindowRepo
	svc       *availability.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		tutorID:   uuid.New(),
		studentID: uuid.New(),
		windows:   &memWindowRepo{windows: map[uuid.UUID]*domain.AvailabilityWindow{}},
	}
	accounts := &fakeAccountRepo{accounts: map[uuid.UUID]*domain.Account{
		f.tutorID:   {ID: f.tutorID, Role: domain.RoleTutor},
		f.studentID: {ID: f.studentID, Role: domain.RoleStudent},
	}}
	f.svc = availability.NewService(f.windows, accounts, nopLogger{})
	return f
}

func TestSetWindow_CreatesActiveWindow(t *testing.T) {
	f := newFixture(t)

	window, err := f.svc.SetWindow(context.Background(), f.tutorID,
		types.TimeString("09:00"), types.TimeString("17:00"))
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("09:00"), window.StartTime)
	assert.Equal(t, types.TimeString("17:00"), window.EndTime)
	assert.True(t, window.IsActive())
}

func TestSetWindow_ReplacesPreviousWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.SetWindow(ctx, f.tutorID, types.TimeString("09:00"), types.TimeString("17:00"))
	require.NoError(t, err)
	second, err := f.svc.SetWindow(ctx, f.tutorID, types.TimeString("10:00"), types.TimeString("12:00"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "one window per tutor")

	current, err := f.svc.GetWindow(ctx, f.tutorID)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), current.StartTime)
}

func TestSetWindow_InvalidRange_Rejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// end before start
	_, err := f.svc.SetWindow(ctx, f.tutorID, types.TimeString("17:00"), types.TimeString("09:00"))
	assert.ErrorIs(t, err, availability.ErrInvalidTimeRange)

	// empty window
	_, err = f.svc.SetWindow(ctx, f.tutorID, types.TimeString("09:00"), types.TimeString("09:00"))
	assert.ErrorIs(t, err, availability.ErrInvalidTimeRange)

	// malformed time
	_, err = f.svc.SetWindow(ctx, f.tutorID, types.TimeString("9am"), types.TimeString("17:00"))
	assert.ErrorIs(t, err, availability.ErrInvalidTimeRange)
}

func TestSetWindow_ByStudent_Rejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SetWindow(context.Background(), f.studentID,
		types.TimeString("09:00"), types.TimeString("17:00"))

	assert.ErrorIs(t, err, availability.ErrNotTutor)
}

func TestSetWindow_UnknownTutor_Rejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SetWindow(context.Background(), uuid.New(),
		types.TimeString("09:00"), types.TimeString("17:00"))

	assert.ErrorIs(t, err, availability.ErrTutorNotFound)
}

func TestGetWindow_NoneConfigured(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetWindow(context.Background(), f.tutorID)

	assert.ErrorIs(t, err, availability.ErrNoAvailability)
}
