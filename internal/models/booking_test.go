package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestBooking_Covers(t *testing.T) {
	b := Booking{CheckIn: day("2024-12-24"), CheckOut: day("2024-12-26")}

	assert.True(t, b.Covers(day("2024-12-24")), "check-in day is covered")
	assert.True(t, b.Covers(day("2024-12-25")))
	assert.True(t, b.Covers(day("2024-12-26")), "check-out day is covered")
	assert.False(t, b.Covers(day("2024-12-23")))
	assert.False(t, b.Covers(day("2024-12-27")))
}
