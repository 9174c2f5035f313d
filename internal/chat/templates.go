package chat

import (
	"strings"

	"hotel-concierge/internal/common/config"
)

const (
	askRoomName      = "Please specify a valid room name for which you want to know the price. "
	askDate          = "Please specify the date for which you want to check availability."
	askValidDate     = "Please specify a valid date in DD-MM-YYYY format to check availability."
	noRoomNames      = "Room names are not available at the moment. Please try again later."
	roomsPreamble    = "Certainly! I'd be happy to assist you with that. Could you please provide me with the dates you're interested in and any specific room preferences you have? Rooms:- "
	thanksText       = "You're welcome! If you need any further assistance, feel free to ask."
	unknownText      = "I'm sorry, I didn't understand that. Could you please repeat or ask something else?"
	eventsButtonText = "Go to Events"
)

// Greeting is the welcome line for empty messages and the greeting intent.
func Greeting(hotel config.HotelConfig) string {
	return "Welcome to " + hotel.Name + ". How may I assist you today?"
}

func greetingReply(intent Intent, hotel config.HotelConfig) *Reply {
	return reply(intent, text(Greeting(hotel)))
}

func amenitiesReply(hotel config.HotelConfig) *Reply {
	return reply(IntentAmenities, text(strings.Join(hotel.Amenities, ", ")))
}

func contactReply(hotel config.HotelConfig) *Reply {
	return reply(IntentContact,
		text("You can contact us via email at "),
		link(hotel.Email, "mailto:"+hotel.Email),
		text(" 📩... "),
		link(hotel.Phone, "tel:"+hotel.Phone),
		text(" 📲..."),
	)
}

func eventReply(hotel config.HotelConfig) *Reply {
	return reply(IntentEvent, button(eventsButtonText, hotel.EventsURL))
}

func distanceReply(hotel config.HotelConfig) *Reply {
	return reply(IntentDistance,
		text(strings.Join(hotel.Distances, ", ")+", "),
		link(hotel.MapLabel, hotel.MapURL),
	)
}

func locationReply(hotel config.HotelConfig) *Reply {
	return reply(IntentLocation, link(hotel.MapLabel, hotel.MapURL))
}
