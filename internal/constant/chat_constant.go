package constant

// Watermill topics.
const (
	TopicMessageFinalized = "chat.message.finalized"
)
