package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tutorlink/booking-service/internal/domain"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.AppointmentStatus
		to   domain.AppointmentStatus
		want bool
	}{
		{"scheduled to completed", domain.StatusScheduled, domain.StatusCompleted, true},
		{"scheduled to cancelled", domain.StatusScheduled, domain.StatusCancelled, true},
		{"completed is terminal", domain.StatusCompleted, domain.StatusCancelled, false},
		{"cancelled is terminal", domain.StatusCancelled, domain.StatusScheduled, false},
		{"no self transition", domain.StatusScheduled, domain.StatusScheduled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanTransition(tt.from, tt.to))
		})
	}
}

func TestAppointment_Overlaps(t *testing.T) {
	appt := &domain.Appointment{
		StartTime: time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, time.June, 1, 10, 30, 0, 0, time.UTC),
	}
	at := func(h, m int) time.Time {
		return time.Date(2026, time.June, 1, h, m, 0, 0, time.UTC)
	}

	assert.True(t, appt.Overlaps(at(10, 0), at(10, 30)), "identical interval")
	assert.True(t, appt.Overlaps(at(9, 45), at(10, 15)), "partial overlap from the left")
	assert.True(t, appt.Overlaps(at(10, 15), at(10, 45)), "partial overlap from the right")
	assert.True(t, appt.Overlaps(at(9, 0), at(11, 0)), "containing interval")

	// Half-open: touching intervals do not overlap
	assert.False(t, appt.Overlaps(at(9, 30), at(10, 0)))
	assert.False(t, appt.Overlaps(at(10, 30), at(11, 0)))
}

func TestAppointment_CanBeCompleted(t *testing.T) {
	end := time.Date(2026, time.June, 1, 10, 30, 0, 0, time.UTC)
	appt := &domain.Appointment{Status: domain.StatusScheduled, EndTime: end}

	assert.False(t, appt.CanBeCompleted(end.Add(-time.Minute)), "not before the end")
	assert.True(t, appt.CanBeCompleted(end), "exactly at the end")
	assert.True(t, appt.CanBeCompleted(end.Add(time.Hour)))

	appt.Status = domain.StatusCancelled
	assert.False(t, appt.CanBeCompleted(end.Add(time.Hour)))
}

func TestAccount_IsVerifiedTutor(t *testing.T) {
	acc := &domain.Account{Role: domain.RoleTutor, VerificationStatus: domain.VerificationVerified}
	assert.True(t, acc.IsVerifiedTutor())

	acc.VerificationStatus = domain.VerificationPending
	assert.False(t, acc.IsVerifiedTutor())

	acc = &domain.Account{Role: domain.RoleStudent, VerificationStatus: domain.VerificationVerified}
	assert.False(t, acc.IsVerifiedTutor())
}
