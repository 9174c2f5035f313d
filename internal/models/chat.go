package models

// ChatMessage is the inbound body of POST /chat.
type ChatMessage struct {
	Message string `json:"message" form:"message"`
}

// ChatResponse is the outbound body of POST /chat.
type ChatResponse struct {
	Message string `json:"message"`
}
