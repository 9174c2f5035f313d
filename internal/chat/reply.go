package chat

import "hotel-concierge/internal/models"

type Intent string

const (
	IntentEmpty        Intent = "empty"
	IntentPrice        Intent = "price"
	IntentAvailability Intent = "availability"
	IntentGreeting     Intent = "greeting"
	IntentRooms        Intent = "rooms"
	IntentAmenities    Intent = "amenities"
	IntentContact      Intent = "contact"
	IntentAllRooms     Intent = "all_rooms"
	IntentThanks       Intent = "thanks"
	IntentEvent        Intent = "event"
	IntentDistance     Intent = "distance"
	IntentLocation     Intent = "location"
	IntentUnknown      Intent = "unknown"
)

type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentBold
	SegmentLink
	SegmentButton
	SegmentRoomCard
	SegmentRoomLinks
	SegmentRoomNames
	SegmentBreak
)

// Segment is one piece of a reply. Which fields are set depends on Kind:
// Text for text, bold, link and button; URL for link and button; Room for a
// room card; Names for room links and room names.
type Segment struct {
	Kind  SegmentKind
	Text  string
	URL   string
	Room  *models.Room
	Names []string
}

// Reply is a classified, format independent chat answer.
type Reply struct {
	Intent   Intent
	Segments []Segment
}

func text(s string) Segment {
	return Segment{Kind: SegmentText, Text: s}
}
func bold(s string) Segment {
	return Segment{Kind: SegmentBold, Text: s}
}
func linebreak() Segment {
	return Segment{Kind: SegmentBreak}
}
func link(label, url string) Segment {
	return Segment{Kind: SegmentLink, Text: label, URL: url}
}
func button(label, url string) Segment {
	return Segment{Kind: SegmentButton, Text: label, URL: url}
}
func roomCard(room *models.Room) Segment {
	return Segment{Kind: SegmentRoomCard, Room: room}
}
func roomLinks(names []string) Segment {
	return Segment{Kind: SegmentRoomLinks, Names: names}
}
func roomNames(names []string) Segment {
	return Segment{Kind: SegmentRoomNames, Names: names}
}

func reply(intent Intent, segments ...Segment) *Reply {
	return &Reply{Intent: intent, Segments: segments}
}
