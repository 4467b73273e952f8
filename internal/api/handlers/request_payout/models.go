package request_payout

import (
	"time"

	"github.com/tutorlink/booking-service/internal/domain"
)

// RequestPayoutRequest HTTP request model
type RequestPayoutRequest struct {
	Credits     int64  `json:"credits"`
	PaypalEmail string `json:"paypalEmail"`
}

// PayoutResponse HTTP response model
type PayoutResponse struct {
	ID          string `json:"id"`
	Credits     int64  `json:"credits"`
	Amount      int64  `json:"amount"`
	PlatformFee int64  `json:"platformFee"`
	NetAmount   int64  `json:"netAmount"`
	PaypalEmail string `json:"paypalEmail"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// FromPayout конвертирует доменную модель в HTTP response
func FromPayout(p *domain.Payout) *PayoutResponse {
	return &PayoutResponse{
		ID:          p.ID.String(),
		Credits:     p.Credits,
		Amount:      p.Amount,
		PlatformFee: p.PlatformFee,
		NetAmount:   p.NetAmount,
		PaypalEmail: p.PaypalEmail,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}
