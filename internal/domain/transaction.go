package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType tags the business reason for a credit movement
type TransactionType string

const (
	TxPurchase             TransactionType = "PURCHASE"
	TxAppointmentDeduction TransactionType = "APPOINTMENT_DEDUCTION"
	TxAdminAdjustment      TransactionType = "ADMIN_ADJUSTMENT"
	TxSubscriptionRenewal  TransactionType = "SUBSCRIPTION_RENEWAL"
)

// Valid reports whether the type is one of the known types.
func (t TransactionType) Valid() bool {
	switch t {
	case TxPurchase, TxAppointmentDeduction, TxAdminAdjustment, TxSubscriptionRenewal:
		return true
	}
	return false
}

// CreditTransaction is an immutable record of one balance change.
// The ledger is append-only: transactions are never updated or deleted,
// and the sum of an account's transactions equals its current balance.
type CreditTransaction struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	// Signed amount: positive for credits, negative for debits
	Amount int64
	Type   TransactionType
	// Caller-supplied key making retried operations safe to resubmit
	IdempotencyKey *string
	CreatedAt      time.Time
}
