package chatmessage

import "hotel-concierge/internal/chat"

type Output struct {
	Intent  chat.Intent `json:"intent"`
	Message string      `json:"message"`
}

// greetingBody carries the empty-message greeting in an "error" field with a
// 200 status; existing widgets read it from there.
type greetingBody struct {
	Error string `json:"error"`
}
