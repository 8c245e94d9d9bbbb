package entity

// Message is a free-text note kept in the message store.
type Message struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}
