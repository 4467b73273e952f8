package domain

import "time"

// Slot is a candidate 30-minute interval derived from a tutor's
// availability window. Slots are computed fresh on every query and are
// never stored.
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
	// Human-readable label, e.g. "9:00 AM - 9:30 AM"
	Formatted string
}

// DaySlots groups the free slots of one calendar day. A fully booked
// day is present with an empty Slots list so callers can distinguish
// "fully booked" from "not queried".
type DaySlots struct {
	// Date in YYYY-MM-DD
	Date string
	// Display label, e.g. "Monday, June 1"
	DisplayDate string
	Slots       []Slot
}
