package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// appointmentTransitions is the appointment state machine. COMPLETED and
// CANCELLED are terminal.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition reports whether an appointment may move from one status
// to another.
func CanTransition(from, to AppointmentStatus) bool {
	for _, next := range appointmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Appointment represents a booked 30-minute tutoring session.
type Appointment struct {
	ID        uuid.UUID
	TutorID   uuid.UUID
	StudentID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Status    AppointmentStatus

	// Notes written by the tutor after the session
	Notes *string
	// Free-text description supplied by the student at booking time
	StudentDescription *string

	// Handle of the external video session acquired at booking time
	VideoSessionID    string
	VideoSessionToken *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusScheduled
}

// CanBeCancelled reports whether the appointment can be cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// CanBeCompleted reports whether the tutor may mark the appointment
// completed at the given instant.
func (a *Appointment) CanBeCompleted(now time.Time) bool {
	return a.Status == StatusScheduled && !now.Before(a.EndTime)
}

// IsParticipant reports whether the account takes part in the appointment.
func (a *Appointment) IsParticipant(accountID uuid.UUID) bool {
	return a.TutorID == accountID || a.StudentID == accountID
}

// Overlaps reports whether the appointment intersects [start, end) under
// half-open interval semantics: [a,b) and [c,d) overlap iff a < d && c < b.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && start.Before(a.EndTime)
}
