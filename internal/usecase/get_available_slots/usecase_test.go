package get_available_slots_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/booking-service/internal/domain"
	accountRepo "github.com/tutorlink/booking-service/internal/infra/storage/account"
	availabilityRepo "github.com/tutorlink/booking-service/internal/infra/storage/availability"
	"github.com/tutorlink/booking-service/internal/usecase/get_available_slots"
	"github.com/tutorlink/booking-service/pkg/types"
)

// =============================================================================
// TEST SETUP
// =============================================================================

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

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

type fakeWindowRepo struct {
	window *domain.AvailabilityWindow
}

func (r *fakeWindowRepo) GetByTutor(ctx context.Context, tutorID uuid.UUID) (*domain.AvailabilityWindow, error) {
	if r.window == nil {
		return nil, availabilityRepo.ErrWindowNotFound
	}
	return r.window, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (r *fakeAppointmentRepo) ListScheduledByTutor(ctx context.Context, tutorID uuid.UUID, until time.Time) ([]*domain.Appointment, error) {
	return r.appointments, nil
}

type fixture struct {
	tutorID      uuid.UUID
	accounts     *fakeAccountRepo
	windows      *fakeWindowRepo
	appointments *fakeAppointmentRepo
	useCase      *get_available_slots.UseCase
}

// newFixture wires a verified tutor with a 09:00-11:00 daily window and
// a clock pinned to 08:00 on June 1, 2026 (a Monday).
func newFixture(t *testing.T) *fixture {
	t.Helper()

	tutorID := uuid.New()
	f := &fixture{
		tutorID: tutorID,
		accounts: &fakeAccountRepo{accounts: map[uuid.UUID]*domain.Account{
			tutorID: {
				ID:                 tutorID,
				Role:               domain.RoleTutor,
				VerificationStatus: domain.VerificationVerified,
			},
		}},
		windows: &fakeWindowRepo{window: &domain.AvailabilityWindow{
			ID:        uuid.New(),
			TutorID:   tutorID,
			StartTime: types.TimeString("09:00"),
			EndTime:   types.TimeString("11:00"),
			Status:    domain.AvailabilityAvailable,
		}},
		appointments: &fakeAppointmentRepo{},
	}

	f.useCase = get_available_slots.NewUseCase(f.appointments, f.accounts, f.windows, nopLogger{}).
		WithTimeProvider(fixedClock{t: time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)})

	return f
}

func (f *fixture) execute(t *testing.T, horizonDays int) *get_available_slots.Response {
	t.Helper()
	resp, err := f.useCase.Execute(context.Background(), &get_available_slots.Request{
		TutorID:     f.tutorID,
		HorizonDays: horizonDays,
	})
	require.NoError(t, err)
	return resp
}

func slotStarts(slots []domain.Slot) []string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartTime.Format("15:04"))
	}
	return starts
}

// =============================================================================
// SLOT GENERATION
// =============================================================================

func TestExecute_TwoHourWindow_FourSlotsPerDay(t *testing.T) {
	f := newFixture(t)

	resp := f.execute(t, domain.DefaultHorizonDays)

	require.Len(t, resp.Days, 4)
	for _, day := range resp.Days {
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotStarts(day.Slots))
	}
}

func TestExecute_BookedSlot_Excluded(t *testing.T) {
	f := newFixture(t)
	f.appointments.appointments = []*domain.Appointment{{
		ID:        uuid.New(),
		TutorID:   f.tutorID,
		StartTime: time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, time.June, 1, 10, 30, 0, 0, time.UTC),
		Status:    domain.StatusScheduled,
	}}

	resp := f.execute(t, domain.DefaultHorizonDays)

	assert.Equal(t, []string{"09:00", "09:30", "10:30"}, slotStarts(resp.Days[0].Slots))
	// Other days are unaffected by a booking today
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotStarts(resp.Days[1].Slots))
}

func TestExecute_CancelledAppointment_FreesTheSlot(t *testing.T) {
	f := newFixture(t)
	f.appointments.appointments = []*domain.Appointment{{
		ID:        uuid.New(),
		TutorID:   f.tutorID,
		StartTime: time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, time.June, 1, 10, 30, 0, 0, time.UTC),
		Status:    domain.StatusCancelled,
	}}

	resp := f.execute(t, 1)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotStarts(resp.Days[0].Slots))
}

func TestExecute_AdjacentAppointment_DoesNotConflict(t *testing.T) {
	// An appointment ending exactly at 10:00 must not block the
	// 10:00-10:30 slot: intervals are half-open.
	f := newFixture(t)
	f.appointments.appointments = []*domain.Appointment{{
		ID:        uuid.New(),
		TutorID:   f.tutorID,
		StartTime: time.Date(2026, time.June, 1, 9, 30, 0, 0, time.UTC),
		EndTime:   time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC),
		Status:    domain.StatusScheduled,
	}}

	resp := f.execute(t, 1)

	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, slotStarts(resp.Days[0].Slots))
}

func TestExecute_PastSlots_Filtered(t *testing.T) {
	// Clock mid-window at 10:05: the 09:00, 09:30 and 10:00 slots have
	// already started, only 10:30 remains offerable today.
	f := newFixture(t)
	f.useCase.WithTimeProvider(fixedClock{t: time.Date(2026, time.June, 1, 10, 5, 0, 0, time.UTC)})

	resp := f.execute(t, 2)

	assert.Equal(t, []string{"10:30"}, slotStarts(resp.Days[0].Slots))
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotStarts(resp.Days[1].Slots))
}

func TestExecute_FullyBookedDay_PresentWithEmptySlots(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	for _, hhmm := range []struct{ h, m int }{{9, 0}, {9, 30}, {10, 0}, {10, 30}} {
		start := time.Date(day.Year(), day.Month(), day.Day(), hhmm.h, hhmm.m, 0, 0, time.UTC)
		f.appointments.appointments = append(f.appointments.appointments, &domain.Appointment{
			ID:        uuid.New(),
			TutorID:   f.tutorID,
			StartTime: start,
			EndTime:   start.Add(30 * time.Minute),
			Status:    domain.StatusScheduled,
		})
	}

	resp := f.execute(t, 2)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2026-06-01", resp.Days[0].Date)
	assert.Empty(t, resp.Days[0].Slots, "fully booked day stays in the list with no slots")
	assert.Len(t, resp.Days[1].Slots, 4)
}

func TestExecute_WindowNotDivisibleBySlot_TailTruncated(t *testing.T) {
	// A 09:00-10:45 window yields three slots; the trailing 15 minutes
	// cannot hold a full slot.
	f := newFixture(t)
	f.windows.window.EndTime = types.TimeString("10:45")

	resp := f.execute(t, 1)

	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slotStarts(resp.Days[0].Slots))
}

func TestExecute_SlotLabels(t *testing.T) {
	f := newFixture(t)

	resp := f.execute(t, 1)

	require.NotEmpty(t, resp.Days[0].Slots)
	assert.Equal(t, "9:00 AM - 9:30 AM", resp.Days[0].Slots[0].Formatted)
	assert.Equal(t, "Monday, June 1", resp.Days[0].DisplayDate)
}

func TestExecute_Deterministic(t *testing.T) {
	f := newFixture(t)

	first := f.execute(t, domain.DefaultHorizonDays)
	second := f.execute(t, domain.DefaultHorizonDays)

	assert.Equal(t, first, second)
}

// =============================================================================
// HORIZON
// =============================================================================

func TestExecute_ZeroHorizon_EmptyDayList(t *testing.T) {
	f := newFixture(t)

	resp := f.execute(t, 0)

	assert.Empty(t, resp.Days)
}

func TestExecute_HorizonDates_ConsecutiveFromToday(t *testing.T) {
	f := newFixture(t)

	resp := f.execute(t, domain.DefaultHorizonDays)

	require.Len(t, resp.Days, 4)
	assert.Equal(t, "2026-06-01", resp.Days[0].Date)
	assert.Equal(t, "2026-06-02", resp.Days[1].Date)
	assert.Equal(t, "2026-06-03", resp.Days[2].Date)
	assert.Equal(t, "2026-06-04", resp.Days[3].Date)
}

func TestExecute_NegativeHorizon_Rejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.useCase.Execute(context.Background(), &get_available_slots.Request{
		TutorID:     f.tutorID,
		HorizonDays: -1,
	})

	assert.ErrorIs(t, err, get_available_slots.ErrInvalidInput)
}

// =============================================================================
// TUTOR AND WINDOW PRECONDITIONS
// =============================================================================

func TestExecute_TutorNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.useCase.Execute(context.Background(), &get_available_slots.Request{
		TutorID:     uuid.New(),
		HorizonDays: 4,
	})

	assert.ErrorIs(t, err, get_available_slots.ErrTutorNotFound)
}

func TestExecute_AccountIsNotTutor(t *testing.T) {
	f := newFixture(t)
	f.accounts.accounts[f.tutorID].Role = domain.RoleStudent

	_, err := f.useCase.Execute(context.Background(), &get_available_slots.Request{
		TutorID:     f.tutorID,
		HorizonDays: 4,
	})

	assert.ErrorIs(t, err, get_available_slots.ErrNotTutor)
}

func TestExecute_UnverifiedTutor(t *testing.T) {
	f := newFixture(t)
	f.accounts.accounts[f.tutorID].VerificationStatus = domain.VerificationPending

	_, err := f.useCase.Execute(context.Background(), &get_available_slots.Request{
		TutorID:     f.tutorID,
		HorizonDays: 4,
	})

	assert.ErrorIs(t, err, get_available_slots.ErrTutorNotVerified)
}

func TestExecute_NoWindow(t *testing.T) {
	f := newFixture(t)
	f.windows.window = nil

	_, err := f.useCase.Execute(context.Background(), &get_available_slots.Request{
		TutorID:     f.tutorID,
		HorizonDays: 4,
	})

	assert.ErrorIs(t, err, get_available_slots.ErrNoAvailability)
}

func TestExecute_InactiveWindow(t *testing.T) {
	f := newFixture(t)
	f.windows.window.Status = domain.AvailabilityInactive

	_, err := f.useCase.Execute(context.Background(), &get_available_slots.Request{
		TutorID:     f.tutorID,
		HorizonDays: 4,
	})

	assert.ErrorIs(t, err, get_available_slots.ErrNoAvailability)
}
