package book_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StudentID == uuid.Nil {
		return fmt.Errorf("%w: studentID is required", ErrInvalidInput)
	}

	if req.TutorID == uuid.Nil {
		return fmt.Errorf("%w: tutorID is required", ErrInvalidInput)
	}

	if req.StudentID == req.TutorID {
		return fmt.Errorf("%w: student and tutor must differ", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Слоты начинаются только на границе получаса
	if req.StartTime.Minute()%domain.SlotDurationMinutes != 0 ||
		req.StartTime.Second() != 0 || req.StartTime.Nanosecond() != 0 {
		return fmt.Errorf("%w: startTime must align to a %d-minute boundary", ErrInvalidInput, domain.SlotDurationMinutes)
	}

	// A client-supplied end must match the fixed slot length, not
	// silently shrink or stretch it
	if !req.EndTime.IsZero() &&
		!req.EndTime.Equal(req.StartTime.Add(domain.SlotDurationMinutes*time.Minute)) {
		return fmt.Errorf("%w: endTime must be exactly %d minutes after startTime", ErrInvalidInput, domain.SlotDurationMinutes)
	}

	return nil
}

// hasConflict проверяет пересечение слота с активными записями
// Интервалы полуоткрытые: запись, граничащая со слотом, не мешает
func hasConflict(slotStart, slotEnd time.Time, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if appt.Overlaps(slotStart, slotEnd) {
			return true
		}
	}
	return false
}
