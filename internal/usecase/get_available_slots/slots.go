package get_available_slots

import (
	"time"

	"github.com/tutorlink/booking-service/internal/domain"
)

// generateDaySlots генерирует свободные слоты одного календарного дня
// Окно доступности проецируется на дату, затем от начала окна с шагом 30
// минут генерируются кандидаты; слот попадает в результат, только если он
// целиком помещается в окно, еще не начался и не пересекается с активной
// записью
func generateDaySlots(
	window *domain.AvailabilityWindow,
	date time.Time,
	now time.Time,
	appointments []*domain.Appointment,
) ([]domain.Slot, error) {
	windowStart, err := window.StartTime.OnDate(date)
	if err != nil {
		return nil, err
	}
	windowEnd, err := window.EndTime.OnDate(date)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, 0)
	step := domain.SlotDurationMinutes * time.Minute

	for slotStart := windowStart; ; slotStart = slotStart.Add(step) {
		slotEnd := slotStart.Add(step)

		// Последний слот должен заканчиваться не позже конца окна
		if slotEnd.After(windowEnd) {
			break
		}

		// Слоты в прошлом не предлагаются
		if slotStart.Before(now) {
			continue
		}

		if hasConflict(slotStart, slotEnd, appointments) {
			continue
		}

		slots = append(slots, domain.Slot{
			StartTime: slotStart,
			EndTime:   slotEnd,
			Formatted: formatSlot(slotStart, slotEnd),
		})
	}

	return slots, nil
}

// hasConflict проверяет пересечение слота с активными записями
// Интервалы полуоткрытые: слот, граничащий с записью, свободен
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

func formatSlot(start, end time.Time) string {
	return start.Format(domain.SlotLabelFormat) + " - " + end.Format(domain.SlotLabelFormat)
}

// dayLabel возвращает заголовок дня, например "Monday, June 1"
func dayLabel(date time.Time) string {
	return date.Format(domain.DayLabelFormat)
}

// startOfDay обнуляет время, сохраняя локацию даты
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
