package set_availability

import "github.com/tutorlink/booking-service/internal/domain"

// SetAvailabilityRequest HTTP request model
type SetAvailabilityRequest struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// FromWindow конвертирует доменную модель в HTTP response
func FromWindow(window *domain.AvailabilityWindow) *AvailabilityResponse {
	return &AvailabilityResponse{
		StartTime: window.StartTime.String(),
		EndTime:   window.EndTime.String(),
		Status:    string(window.Status),
	}
}
