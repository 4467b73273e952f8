package register_account

import (
	"time"

	"github.com/tutorlink/booking-service/internal/domain"
)

// RegisterAccountRequest HTTP request model
type RegisterAccountRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AccountResponse HTTP response model
type AccountResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	Credits            int64  `json:"credits"`
	VerificationStatus string `json:"verificationStatus"`
	CreatedAt          string `json:"createdAt"`
}

// FromAccount конвертирует доменную модель в HTTP response
func FromAccount(acc *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:                 acc.ID.String(),
		Name:               acc.Name,
		Email:              acc.Email,
		Role:               string(acc.Role),
		Credits:            acc.Credits,
		VerificationStatus: string(acc.VerificationStatus),
		CreatedAt:          acc.CreatedAt.Format(time.RFC3339),
	}
}
