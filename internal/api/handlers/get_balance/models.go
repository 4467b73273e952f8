package get_balance

import (
	"time"

	"github.com/tutorlink/booking-service/internal/domain"
)

// TransactionResponse HTTP model одной транзакции
type TransactionResponse struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Type      string `json:"type"`
	CreatedAt string `json:"createdAt"`
}

// BalanceResponse HTTP response model
type BalanceResponse struct {
	Credits      int64                 `json:"credits"`
	Transactions []TransactionResponse `json:"transactions"`
}

// FromBalance конвертирует баланс и историю в HTTP response
func FromBalance(credits int64, transactions []*domain.CreditTransaction) *BalanceResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, TransactionResponse{
			ID:        tx.ID.String(),
			Amount:    tx.Amount,
			Type:      string(tx.Type),
			CreatedAt: tx.CreatedAt.Format(time.RFC3339),
		})
	}
	return &BalanceResponse{
		Credits:      credits,
		Transactions: items,
	}
}
