package get_available_slots

import (
	"time"

	getAvailableSlots "github.com/tutorlink/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Formatted string `json:"formatted"`
}

// DayResponse HTTP model одного дня со слотами
type DayResponse struct {
	Date        string         `json:"date"`
	DisplayDate string         `json:"displayDate"`
	Slots       []SlotResponse `json:"slots"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	TutorID string        `json:"tutorId"`
	Days    []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, SlotResponse{
				StartTime: slot.StartTime.Format(time.RFC3339),
				EndTime:   slot.EndTime.Format(time.RFC3339),
				Formatted: slot.Formatted,
			})
		}
		days = append(days, DayResponse{
			Date:        day.Date,
			DisplayDate: day.DisplayDate,
			Slots:       slots,
		})
	}

	return &AvailableSlotsResponse{
		TutorID: resp.TutorID.String(),
		Days:    days,
	}
}
