package domain

import (
	"time"

	"github.com/google/uuid"
)

// PayoutStatus represents the state of a payout request
type PayoutStatus string

const (
	PayoutProcessing PayoutStatus = "PROCESSING"
	PayoutProcessed  PayoutStatus = "PROCESSED"
)

// Payout is a tutor's request to convert accumulated credits to money.
// Amounts are snapshotted at request time so later pricing changes do
// not affect pending payouts.
type Payout struct {
	ID          uuid.UUID
	TutorID     uuid.UUID
	Credits     int64
	Amount      int64
	PlatformFee int64
	NetAmount   int64
	PaypalEmail string
	Status      PayoutStatus
	ProcessedBy *uuid.UUID
	ProcessedAt *time.Time
	CreatedAt   time.Time
}

// IsPending reports whether the payout still awaits admin approval.
func (p *Payout) IsPending() bool {
	return p.Status == PayoutProcessing
}
