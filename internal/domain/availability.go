package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/pkg/types"
)

// AvailabilityStatus represents the state of an availability window
type AvailabilityStatus string

const (
	AvailabilityAvailable AvailabilityStatus = "AVAILABLE"
	AvailabilityInactive  AvailabilityStatus = "INACTIVE"
)

// AvailabilityWindow is a tutor's recurring daily working window. Each
// tutor has at most one; setting a new window replaces the previous one.
// Windows are wall-clock intervals reprojected onto each calendar date,
// with no timezone arithmetic.
//
// Windows are deliberately decoupled from appointments: slot conflicts
// are always computed against the live appointment set, so replacing a
// window never invalidates already-booked slots.
type AvailabilityWindow struct {
	ID        uuid.UUID
	TutorID   uuid.UUID
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    AvailabilityStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether slots may be generated from the window.
func (w *AvailabilityWindow) IsActive() bool {
	return w.Status == AvailabilityAvailable
}
