package payouts

// Earnings сводка по заработку тьютора
//
// Dollar figures derive from the credit balance at the fixed rate:
// $10 gross per credit, $2 platform fee, $8 net to the tutor.
type Earnings struct {
	AvailableCredits int64
	// ReservedCredits back SCHEDULED appointments and cannot be paid out
	ReservedCredits int64
	GrossAmount     int64
	PlatformFee     int64
	NetAmount       int64

	// TotalPaidOut is the net sum of already processed payouts
	TotalPaidOut int64
	// PendingCredits is the credit amount locked in a PROCESSING payout
	PendingCredits int64
}
