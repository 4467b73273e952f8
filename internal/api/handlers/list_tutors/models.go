package list_tutors

import "github.com/tutorlink/booking-service/internal/domain"

// TutorResponse HTTP response model одного тьютора
type TutorResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Specialty   *string `json:"specialty,omitempty"`
	Experience  *string `json:"experience,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListTutorsResponse HTTP response model
type ListTutorsResponse struct {
	Tutors []TutorResponse `json:"tutors"`
}

// FromAccounts конвертирует доменные модели в HTTP response
func FromAccounts(accounts []*domain.Account) *ListTutorsResponse {
	tutors := make([]TutorResponse, 0, len(accounts))
	for _, acc := range accounts {
		tutors = append(tutors, TutorResponse{
			ID:          acc.ID.String(),
			Name:        acc.Name,
			Specialty:   acc.Specialty,
			Experience:  acc.Experience,
			Description: acc.Description,
		})
	}
	return &ListTutorsResponse{Tutors: tutors}
}
