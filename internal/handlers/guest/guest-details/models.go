package guestdetails

import "hotel-concierge/internal/models"

type Input struct {
	Email string `query:"Email"`
}

type Output struct {
	Data    []models.GuestProfile `json:"data"`
	Message string                `json:"message"`
}
