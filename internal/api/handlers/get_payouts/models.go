package get_payouts

import (
	"time"

	"github.com/tutorlink/booking-service/internal/domain"
)

// PayoutResponse HTTP model одной выплаты
type PayoutResponse struct {
	ID          string `json:"id"`
	TutorID     string `json:"tutorId"`
	Credits     int64  `json:"credits"`
	NetAmount   int64  `json:"netAmount"`
	PaypalEmail string `json:"paypalEmail"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	ProcessedAt string `json:"processedAt,omitempty"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Payouts []PayoutResponse `json:"payouts"`
}

// FromPayouts конвертирует доменные модели в HTTP response
func FromPayouts(payouts []*domain.Payout) *ListResponse {
	items := make([]PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		item := PayoutResponse{
			ID:          p.ID.String(),
			TutorID:     p.TutorID.String(),
			Credits:     p.Credits,
			NetAmount:   p.NetAmount,
			PaypalEmail: p.PaypalEmail,
			Status:      string(p.Status),
			CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		}
		if p.ProcessedAt != nil {
			item.ProcessedAt = p.ProcessedAt.Format(time.RFC3339)
		}
		items = append(items, item)
	}
	return &ListResponse{Payouts: items}
}
