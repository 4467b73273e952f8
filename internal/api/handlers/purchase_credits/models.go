package purchase_credits

// PurchaseCreditsRequest HTTP request model
type PurchaseCreditsRequest struct {
	Amount int64 `json:"amount"`
	// IdempotencyKey защищает повтор платежного вебхука от двойного зачисления
	IdempotencyKey *string `json:"idempotencyKey,omitempty"`
}

// PurchaseCreditsResponse HTTP response model
type PurchaseCreditsResponse struct {
	Credits int64 `json:"credits"`
}
