package set_user_role

import (
	"github.com/tutorlink/booking-service/internal/domain"
)

// SetUserRoleRequest HTTP request model
type SetUserRoleRequest struct {
	Role string `json:"role"`

	// Tutor profile fields, required when role is TUTOR
	Specialty     string `json:"specialty,omitempty"`
	Experience    string `json:"experience,omitempty"`
	CredentialURL string `json:"credentialUrl,omitempty"`
	Description   string `json:"description,omitempty"`
}

// SetUserRoleResponse HTTP response model
type SetUserRoleResponse struct {
	ID                 string  `json:"id"`
	Role               string  `json:"role"`
	VerificationStatus string  `json:"verificationStatus"`
	Specialty          *string `json:"specialty,omitempty"`
}

// FromAccount конвертирует доменную модель в HTTP response
func FromAccount(acc *domain.Account) *SetUserRoleResponse {
	return &SetUserRoleResponse{
		ID:                 acc.ID.String(),
		Role:               string(acc.Role),
		VerificationStatus: string(acc.VerificationStatus),
		Specialty:          acc.Specialty,
	}
}
