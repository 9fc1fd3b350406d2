package chat

import (
	"time"

	"github.com/google/uuid"
)

type seedChat struct {
	name   string
	avatar string
	online bool
	unread int
	last   string
	ago    time.Duration
}

var sampleChats = []seedChat{
	{
		name:   "Sarah Johnson",
		avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		online: true,
		unread: 2,
		last:   "Hey! Are we still on for dinner tonight?",
		ago:    2 * time.Minute,
	},
	{
		name:   "Mike Chen",
		avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		last:   "Thanks for the help with the project!",
		ago:    time.Hour,
	},
	{
		name:   "Emma Wilson",
		avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
		online: true,
		last:   "Can you send me those photos?",
		ago:    3 * time.Hour,
	},
	{
		name:   "David Brown",
		avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		unread: 1,
		last:   "The apartment viewing went great!",
		ago:    24 * time.Hour,
	},
}

// sampleConversations returns the starter inbox, with message times
// relative to now.
func sampleConversations(now time.Time) []*Conversation {
	convs := make([]*Conversation, 0, len(sampleChats))
	for i, sc := range sampleChats {
		id := int64(i + 1)
		convs = append(convs, &Conversation{
			ID:     id,
			Name:   sc.name,
			Avatar: sc.avatar,
			Online: sc.online,
			Unread: sc.unread,
			Messages: []Message{{
				ID:             uuid.NewString(),
				ConversationID: id,
				Text:           sc.last,
				SentAt:         now.Add(-sc.ago),
			}},
		})
	}
	return convs
}
