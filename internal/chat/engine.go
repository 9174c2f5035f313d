// Package chat classifies a guest's free-text message into an intent and
// composes the answer from the catalog and availability stores.
package chat

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"hotel-concierge/internal/availability"
	"hotel-concierge/internal/common/config"
	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/common/metrics"
	"hotel-concierge/internal/models"
	"hotel-concierge/internal/store"
)

type Catalog interface {
	ListRoomNames(ctx context.Context) ([]string, error)
	RoomByName(ctx context.Context, name string) (*models.Room, error)
}

type Availability interface {
	Available(ctx context.Context, date string) (int, error)
}

type responder func(e *Engine, ctx context.Context, message string) (*Reply, error)

type rule struct {
	intent   Intent
	keywords []string
	respond  responder
}

// Primary rules match raw substrings of the lowercased message and are always
// evaluated before the fallback table.
var primaryRules = []rule{
	{IntentPrice, []string{"price", "cost", "rent"}, (*Engine).priceReply},
	{IntentAvailability, []string{"availability", "available", "booking"}, (*Engine).availabilityReply},
}

// Fallback rules match keywords that start at a word boundary. Order matters:
// overlapping triggers resolve to the first rule listed.
var fallbackRules = []rule{
	{IntentGreeting, []string{"hello", "hi", "ha"}, staticReply(func(h config.HotelConfig) *Reply { return greetingReply(IntentGreeting, h) })},
	{IntentRooms, []string{"rooms", "availability", "rooms available", "want to book rooms", "hotel", "room"}, (*Engine).roomsReply},
	{IntentAmenities, []string{"amenities", "facilities"}, staticReply(amenitiesReply)},
	{IntentContact, []string{"contact", "email", "connect", "telephone", "talk", "phone"}, staticReply(contactReply)},
	{IntentAllRooms, []string{"all rooms", "name", "total"}, (*Engine).allRoomsReply},
	{IntentThanks, []string{"thank you", "thanks", "ok", "bye"}, staticReply(func(config.HotelConfig) *Reply { return reply(IntentThanks, text(thanksText)) })},
	{IntentEvent, []string{"event", "function", "wedding", "marrige"}, staticReply(eventReply)},
	{IntentDistance, []string{"far", "distance"}, staticReply(distanceReply)},
	{IntentLocation, []string{"location", "approach", "reach", "visit", "ram bihari palace"}, staticReply(locationReply)},
}

func staticReply(build func(config.HotelConfig) *Reply) responder {
	return func(e *Engine, _ context.Context, _ string) (*Reply, error) {
		return build(e.hotel), nil
	}
}

// Engine is stateless between calls; the same message against the same store
// contents always produces the same reply.
type Engine struct {
	catalog      Catalog
	availability Availability
	hotel        config.HotelConfig
	logger       logger.Logger
}

func NewEngine(catalog Catalog, avail Availability, hotel config.HotelConfig, log logger.Logger) *Engine {
	return &Engine{
		catalog:      catalog,
		availability: avail,
		hotel:        hotel,
		logger:       log.WithFields(map[string]interface{}{"component": "chat"}),
	}
}

// Respond classifies message and builds the reply. Errors are store failures
// only; every conversational dead end is answered with a prompt instead.
func (e *Engine) Respond(ctx context.Context, message string) (*Reply, error) {
	r, err := e.classify(ctx, message)
	if err != nil {
		return nil, err
	}
	metrics.ChatIntentsTotal.WithLabelValues(string(r.Intent)).Inc()
	return r, nil
}

func (e *Engine) classify(ctx context.Context, message string) (*Reply, error) {
	if strings.TrimSpace(message) == "" {
		return greetingReply(IntentEmpty, e.hotel), nil
	}

	lower := strings.ToLower(message)
	for _, r := range primaryRules {
		if containsAny(lower, r.keywords) {
			return r.respond(e, ctx, message)
		}
	}
	for _, r := range fallbackRules {
		if containsAnyWordStart(lower, r.keywords) {
			return r.respond(e, ctx, message)
		}
	}
	return reply(IntentUnknown, text(unknownText)), nil
}

func (e *Engine) priceReply(ctx context.Context, message string) (*Reply, error) {
	names, err := e.catalog.ListRoomNames(ctx)
	if err != nil {
		return nil, err
	}

	name, ok := matchRoomName(message, names)
	if !ok {
		if len(names) == 0 {
			return reply(IntentPrice, text(askRoomName), linebreak(), text(noRoomNames)), nil
		}
		return reply(IntentPrice, text(askRoomName+"Rooms: "), roomNames(names)), nil
	}

	room, err := e.catalog.RoomByName(ctx, name)
	if errors.Is(err, store.ErrRoomNotFound) {
		return reply(IntentPrice, text("Sorry, the prices for "+name+" are not available.")), nil
	}
	if err != nil {
		return nil, err
	}
	return reply(IntentPrice, text("The prices for "+name+" are: "), roomCard(room)), nil
}

func (e *Engine) availabilityReply(ctx context.Context, message string) (*Reply, error) {
	date, ok := extractDate(message)
	if !ok {
		return reply(IntentAvailability, text(askDate)), nil
	}

	n, err := e.availability.Available(ctx, date)
	if errors.Is(err, availability.ErrInvalidDate) {
		return reply(IntentAvailability, text(askValidDate)), nil
	}
	if err != nil {
		return nil, err
	}

	if n <= 0 {
		return reply(IntentAvailability, text(availability.FullyBooked)), nil
	}
	return reply(IntentAvailability,
		text("We have "),
		bold(strconv.Itoa(n)),
		text(" rooms available for "),
		bold(date+"."),
		text(" You can proceed with your booking."),
	), nil
}

func (e *Engine) roomsReply(ctx context.Context, _ string) (*Reply, error) {
	names, err := e.catalog.ListRoomNames(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return reply(IntentRooms, text(roomsPreamble), linebreak(), text(noRoomNames)), nil
	}
	return reply(IntentRooms, text(roomsPreamble), linebreak(), roomLinks(names)), nil
}

func (e *Engine) allRoomsReply(ctx context.Context, _ string) (*Reply, error) {
	names, err := e.catalog.ListRoomNames(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return reply(IntentAllRooms, text(noRoomNames)), nil
	}
	return reply(IntentAllRooms, text("Rooms: "), roomLinks(names)), nil
}
