package models

import "time"

// Booking is a reservation date range; both ends are inclusive.
type Booking struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Covers reports whether the stay includes day.
func (b Booking) Covers(day time.Time) bool {
	return !day.Before(b.CheckIn) && !day.After(b.CheckOut)
}
