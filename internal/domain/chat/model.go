package chat

import "time"

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one entry in the append-only chat log. Chronological order is
// significant.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// WelcomeMessage is seeded into a fresh chat log before any user input.
const WelcomeMessage = "Hello! I'm your AI mentor. I'm here to help you develop and validate your startup ideas. What would you like to work on today?"
