package get_user_appointments

import (
	"time"

	"github.com/tutorlink/booking-service/internal/domain"
)

// AppointmentResponse HTTP model одной записи
type AppointmentResponse struct {
	ID                 string  `json:"id"`
	TutorID            string  `json:"tutorId"`
	StudentID          string  `json:"studentId"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	StudentDescription *string `json:"description,omitempty"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromAppointments конвертирует доменные модели в HTTP response
func FromAppointments(appointments []*domain.Appointment) *ListResponse {
	items := make([]AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		items = append(items, AppointmentResponse{
			ID:                 appt.ID.String(),
			TutorID:            appt.TutorID.String(),
			StudentID:          appt.StudentID.String(),
			StartTime:          appt.StartTime.Format(time.RFC3339),
			EndTime:            appt.EndTime.Format(time.RFC3339),
			Status:             string(appt.Status),
			Notes:              appt.Notes,
			StudentDescription: appt.StudentDescription,
		})
	}
	return &ListResponse{Appointments: items}
}
