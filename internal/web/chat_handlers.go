package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/evcraddock/rent-finder/internal/chat"
)

const defaultSellerName = "Property owner"

// apiListConversations returns the signed-in user's inbox, optionally filtered by seller name.
func (s *Server) apiListConversations(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, s.chats.List(owner(r), r.URL.Query().Get("q")), http.StatusOK)
}

// apiOpenConversation starts or resumes the conversation about a listing.
func (s *Server) apiOpenConversation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PropertyID int64  `json:"property_id"`
		SellerName string `json:"seller_name"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, found := s.store.PropertyByID(req.PropertyID); !found {
		apiError(w, "property not found", http.StatusNotFound)
		return
	}

	name := strings.TrimSpace(req.SellerName)
	if name == "" {
		name = defaultSellerName
	}

	apiJSON(w, s.chats.Open(owner(r), name, req.PropertyID), http.StatusOK)
}

// apiGetConversation returns a conversation and marks it read.
func (s *Server) apiGetConversation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "conversation")
	if !ok {
		return
	}

	if err := s.chats.MarkRead(owner(r), id); err != nil {
		chatError(w, err)
		return
	}
	c, err := s.chats.Get(owner(r), id)
	if err != nil {
		chatError(w, err)
		return
	}
	apiJSON(w, c, http.StatusOK)
}

// apiSendMessage appends the user's message to a conversation.
func (s *Server) apiSendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "conversation")
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := s.chats.Send(owner(r), id, req.Text)
	if err != nil {
		chatError(w, err)
		return
	}
	apiJSON(w, m, http.StatusCreated)
}

func chatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chat.ErrNotFound):
		apiError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, chat.ErrEmptyMessage):
		apiError(w, err.Error(), http.StatusBadRequest)
	default:
		apiError(w, err.Error(), http.StatusInternalServerError)
	}
}
