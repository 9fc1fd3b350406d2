package web

import (
	"net/http"
	"testing"

	"github.com/evcraddock/rent-finder/internal/chat"
)

func TestAPIListConversations(t *testing.T) {
	srv := testServer(t, 0)
	token := signUp(t, srv)

	w := apiRequest(t, srv, "GET", "/api/conversations", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var all []chat.Summary
	decodeBody(t, w, &all)
	if len(all) != 4 {
		t.Errorf("got %d conversations, want 4", len(all))
	}

	w = apiRequest(t, srv, "GET", "/api/conversations?q=emma", token, nil)
	var some []chat.Summary
	decodeBody(t, w, &some)
	if len(some) != 1 || some[0].Name != "Emma Wilson" {
		t.Errorf("filtered = %+v", some)
	}
}

func TestAPIGetConversationMarksRead(t *testing.T) {
	srv := testServer(t, 0)
	token := signUp(t, srv)

	w := apiRequest(t, srv, "GET", "/api/conversations/1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var c chat.Conversation
	decodeBody(t, w, &c)
	if c.Name != "Sarah Johnson" || c.Unread != 0 {
		t.Errorf("conversation = %+v", c)
	}

	if w := apiRequest(t, srv, "GET", "/api/conversations/99", token, nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown: status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAPISendMessage(t *testing.T) {
	srv := testServer(t, 0)
	token := signUp(t, srv)

	w := apiRequest(t, srv, "POST", "/api/conversations/2/messages", token, map[string]string{"text": " Is it still available? "})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var m chat.Message
	decodeBody(t, w, &m)
	if m.Text != "Is it still available?" || !m.FromMe || m.ConversationID != 2 {
		t.Errorf("message = %+v", m)
	}

	if w := apiRequest(t, srv, "POST", "/api/conversations/2/messages", token, map[string]string{"text": "  "}); w.Code != http.StatusBadRequest {
		t.Errorf("blank: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if w := apiRequest(t, srv, "POST", "/api/conversations/99/messages", token, map[string]string{"text": "hi"}); w.Code != http.StatusNotFound {
		t.Errorf("unknown: status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAPIOpenConversation(t *testing.T) {
	srv := testServer(t, 0)
	token := signUp(t, srv)

	body := map[string]interface{}{"property_id": 7, "seller_name": "Tunde Bakare"}
	w := apiRequest(t, srv, "POST", "/api/conversations", token, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var first chat.Conversation
	decodeBody(t, w, &first)
	if first.PropertyID != 7 || first.Name != "Tunde Bakare" {
		t.Errorf("conversation = %+v", first)
	}

	w = apiRequest(t, srv, "POST", "/api/conversations", token, map[string]interface{}{"property_id": 7})
	var again chat.Conversation
	decodeBody(t, w, &again)
	if again.ID != first.ID {
		t.Errorf("reopened id = %d, want %d", again.ID, first.ID)
	}

	w = apiRequest(t, srv, "POST", "/api/conversations", token, map[string]interface{}{"property_id": 8})
	var other chat.Conversation
	decodeBody(t, w, &other)
	if other.Name != defaultSellerName {
		t.Errorf("seller = %q, want %q", other.Name, defaultSellerName)
	}

	w = apiRequest(t, srv, "POST", "/api/conversations", token, map[string]interface{}{"property_id": 999})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown property: status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAPIConversationsArePerUser(t *testing.T) {
	srv := testServer(t, 0)
	alice := signUpAs(t, srv, "Alice Adeyemi", "alice@example.com")
	bob := signUpAs(t, srv, "Bob Tesfaye", "bob@example.com")

	w := apiRequest(t, srv, "POST", "/api/conversations/1/messages", alice, map[string]string{"text": "Private question"})
	if w.Code != http.StatusCreated {
		t.Fatalf("alice send: status = %d", w.Code)
	}
	apiRequest(t, srv, "POST", "/api/conversations", alice, map[string]interface{}{"property_id": 7})

	w = apiRequest(t, srv, "GET", "/api/conversations/1", bob, nil)
	var c chat.Conversation
	decodeBody(t, w, &c)
	for _, m := range c.Messages {
		if m.Text == "Private question" {
			t.Error("bob can read alice's message")
		}
	}

	w = apiRequest(t, srv, "GET", "/api/conversations", bob, nil)
	var inbox []chat.Summary
	decodeBody(t, w, &inbox)
	if len(inbox) != 4 {
		t.Errorf("bob's inbox has %d conversations, want 4", len(inbox))
	}

	// Reading a conversation only clears the reader's unread count.
	w = apiRequest(t, srv, "GET", "/api/conversations?q=sarah", alice, nil)
	var sarah []chat.Summary
	decodeBody(t, w, &sarah)
	if len(sarah) != 1 || sarah[0].Unread != 2 {
		t.Errorf("alice's Sarah conversation = %+v, want 2 unread", sarah)
	}
}
