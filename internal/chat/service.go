package chat

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned for an unknown conversation ID.
	ErrNotFound = errors.New("conversation not found")
	// ErrEmptyMessage is returned when a message has no text after trimming.
	ErrEmptyMessage = errors.New("message text is required")
)

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithoutSamples starts the service with an empty inbox.
func WithoutSamples() Option {
	return func(s *Service) { s.samples = false }
}

// Service keeps each user's conversations in memory for the life of the
// process. Inboxes are keyed by owner, the signed-in user's email, and
// conversation IDs are only unique within one inbox.
type Service struct {
	mu      sync.Mutex
	inboxes map[string]*inbox
	now     func() time.Time
	samples bool
}

type inbox struct {
	convs  []*Conversation
	nextID int64
}

// NewService creates a chat service. Each inbox starts with the sample
// conversations unless WithoutSamples is given.
func NewService(opts ...Option) *Service {
	s := &Service{inboxes: make(map[string]*inbox), now: time.Now, samples: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// inbox returns owner's inbox, creating it on first use. Callers hold s.mu.
func (s *Service) inbox(owner string) *inbox {
	in, ok := s.inboxes[owner]
	if ok {
		return in
	}

	in = &inbox{nextID: 1}
	if s.samples {
		in.convs = sampleConversations(s.now())
		in.nextID = int64(len(in.convs) + 1)
	}
	s.inboxes[owner] = in
	return in
}

// List returns owner's conversations whose seller name contains query,
// ignoring case, most recently active first.
func (s *Service) List(owner, query string) []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	convs := s.inbox(owner).convs
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Summary, 0, len(convs))
	for _, c := range convs {
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		out = append(out, c.summary())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastAt.After(out[j].LastAt)
	})
	return out
}

// Get returns a copy of one of owner's conversations with its full thread.
func (s *Service) Get(owner string, id int64) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.inbox(owner).find(id)
	if c == nil {
		return nil, ErrNotFound
	}
	return c.clone(), nil
}

// Send appends a message from owner to one of their conversations.
func (s *Service) Send(owner string, id int64, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.inbox(owner).find(id)
	if c == nil {
		return nil, ErrNotFound
	}

	m := Message{
		ID:             uuid.NewString(),
		ConversationID: id,
		Text:           text,
		FromMe:         true,
		SentAt:         s.now(),
	}
	c.Messages = append(c.Messages, m)
	return &m, nil
}

// MarkRead clears a conversation's unread count.
func (s *Service) MarkRead(owner string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.inbox(owner).find(id)
	if c == nil {
		return ErrNotFound
	}
	c.Unread = 0
	return nil
}

// Open returns owner's conversation about a property, starting one with the
// seller if none exists yet.
func (s *Service) Open(owner, sellerName string, propertyID int64) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := s.inbox(owner)
	for _, c := range in.convs {
		if propertyID != 0 && c.PropertyID == propertyID {
			return c.clone()
		}
	}

	c := &Conversation{
		ID:         in.nextID,
		Name:       sellerName,
		PropertyID: propertyID,
		Messages:   []Message{},
	}
	in.nextID++
	in.convs = append(in.convs, c)
	return c.clone()
}

func (in *inbox) find(id int64) *Conversation {
	for _, c := range in.convs {
		if c.ID == id {
			return c
		}
	}
	return nil
}
