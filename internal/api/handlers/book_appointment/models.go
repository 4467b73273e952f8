package book_appointment

import (
	"time"

	"github.com/google/uuid"

	bookAppointment "github.com/tutorlink/booking-service/internal/usecase/book_appointment"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	TutorID        string  `json:"tutorId"`
	StartTime      string  `json:"startTime"`         // RFC3339
	EndTime        string  `json:"endTime,omitempty"` // RFC3339, optional
	Description    *string `json:"description,omitempty"`
	IdempotencyKey *string `json:"idempotencyKey,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                 string  `json:"id"`
	TutorID            string  `json:"tutorId"`
	StudentID          string  `json:"studentId"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Status             string  `json:"status"`
	StudentDescription *string `json:"description,omitempty"`
	VideoSessionID     string  `json:"videoSessionId"`
	CreatedAt          string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest(studentID uuid.UUID) (*bookAppointment.Request, error) {
	tutorID, err := uuid.Parse(r.TutorID)
	if err != nil {
		return nil, err
	}

	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	var endTime time.Time
	if r.EndTime != "" {
		endTime, err = time.Parse(time.RFC3339, r.EndTime)
		if err != nil {
			return nil, err
		}
	}

	return &bookAppointment.Request{
		StudentID:      studentID,
		TutorID:        tutorID,
		StartTime:      startTime,
		EndTime:        endTime,
		Description:    r.Description,
		IdempotencyKey: r.IdempotencyKey,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 resp.ID.String(),
		TutorID:            resp.TutorID.String(),
		StudentID:          resp.StudentID.String(),
		StartTime:          resp.StartTime.Format(time.RFC3339),
		EndTime:            resp.EndTime.Format(time.RFC3339),
		Status:             resp.Status,
		StudentDescription: resp.StudentDescription,
		VideoSessionID:     resp.VideoSessionID,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
	}
}
