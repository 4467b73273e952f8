package book_appointment

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на бронирование занятия
type Request struct {
	StudentID uuid.UUID
	TutorID   uuid.UUID
	// StartTime is the slot start; the end is always 30 minutes later
	StartTime time.Time
	// EndTime is optional; when set it must equal StartTime plus the
	// slot duration, otherwise the request is rejected
	EndTime time.Time
	// Description is the student's free-text note about what they need
	Description *string
	// IdempotencyKey makes a retried booking safe to resubmit
	IdempotencyKey *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID                 uuid.UUID
	TutorID            uuid.UUID
	StudentID          uuid.UUID
	StartTime          time.Time
	EndTime            time.Time
	Status             string
	StudentDescription *string
	VideoSessionID     string
	CreatedAt          time.Time
}
