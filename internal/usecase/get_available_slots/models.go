package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/tutorlink/booking-service/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	TutorID uuid.UUID // ID тьютора
	// HorizonDays is how many calendar days to offer, counting today.
	// Zero yields an empty day list; callers default it to 4.
	HorizonDays int
}

// Response модель ответа со слотами, сгруппированными по дням
type Response struct {
	TutorID uuid.UUID
	// Days holds one entry per day of the horizon, in calendar order;
	// a fully booked day appears with an empty slot list.
	Days []domain.DaySlots
}
