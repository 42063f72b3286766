package chat

// Store provides state access for the chat log.
type Store interface {
	AppendChatMessage(sender Sender, content string) Message
	ChatMessages() []Message
}
