// Package chat holds conversations between users and sellers.
package chat

import "time"

// Message is one line in a conversation.
type Message struct {
	ID             string    `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	Text           string    `json:"text"`
	FromMe         bool      `json:"from_me"`
	SentAt         time.Time `json:"sent_at"`
}

// Conversation is a message thread with one seller.
type Conversation struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar"`
	Online     bool      `json:"online"`
	Unread     int       `json:"unread"`
	PropertyID int64     `json:"property_id,omitempty"`
	Messages   []Message `json:"messages"`
}

// Summary is a conversation as shown in the inbox.
type Summary struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Avatar      string    `json:"avatar"`
	Online      bool      `json:"online"`
	Unread      int       `json:"unread"`
	PropertyID  int64     `json:"property_id,omitempty"`
	LastMessage string    `json:"last_message"`
	LastAt      time.Time `json:"last_at"`
}

func (c *Conversation) clone() *Conversation {
	out := *c
	out.Messages = make([]Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	return &out
}

func (c *Conversation) summary() Summary {
	s := Summary{
		ID:         c.ID,
		Name:       c.Name,
		Avatar:     c.Avatar,
		Online:     c.Online,
		Unread:     c.Unread,
		PropertyID: c.PropertyID,
	}
	if n := len(c.Messages); n > 0 {
		last := c.Messages[n-1]
		s.LastMessage = last.Text
		s.LastAt = last.SentAt
	}
	return s
}
