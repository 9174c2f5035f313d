package guestlist

import "hotel-concierge/internal/models"

type Output struct {
	Users []models.GuestProfile `json:"Users"`
}
