package domain

// Scheduling constants
const (
	// SlotDurationMinutes is the fixed length of every appointment
	SlotDurationMinutes = 30

	// DefaultHorizonDays is how many calendar days of slots are offered,
	// including today
	DefaultHorizonDays = 4

	// AppointmentCostCredits is the fixed price of one appointment
	AppointmentCostCredits = 2

	// VideoJoinWindowMinutes is how early a participant may request a
	// video token before the scheduled start
	VideoJoinWindowMinutes = 30
)

// Payout economics, in whole dollars per credit
const (
	CreditValue            = 10
	PlatformFeePerCredit   = 2
	TutorEarningsPerCredit = 8
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// SlotLabelFormat renders slot boundaries for display, e.g. "9:00 AM"
	SlotLabelFormat = "3:04 PM"
	// DayLabelFormat renders day headers for display, e.g. "Monday, June 1"
	DayLabelFormat = "Monday, January 2"
)
