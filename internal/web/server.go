// Package web provides the rent-finder HTTP JSON API.
package web

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/rs/cors"

	"github.com/evcraddock/rent-finder/internal/auth"
	"github.com/evcraddock/rent-finder/internal/catalog"
	"github.com/evcraddock/rent-finder/internal/chat"
	"github.com/evcraddock/rent-finder/internal/listing"
	"github.com/evcraddock/rent-finder/internal/logging"
)

// Options wires the server to its collaborators.
type Options struct {
	DB        *sql.DB
	Store     *catalog.Store
	Publisher *listing.Publisher
	Chats     *chat.Service // sample inboxes when nil

	CORSOrigins   []string // every origin when empty
	SecureCookies bool
}

// Server is the API HTTP server.
type Server struct {
	store     *catalog.Store
	publisher *listing.Publisher
	chats     *chat.Service
	users     *auth.UserStore
	sessions  *auth.SessionStore
	limiter   *auth.RateLimiter
	mux       *http.ServeMux
	handler   http.Handler
}

// NewServer creates an API server.
func NewServer(opts Options) (*Server, error) {
	switch {
	case opts.DB == nil:
		return nil, errors.New("database is required")
	case opts.Store == nil:
		return nil, errors.New("catalog store is required")
	case opts.Publisher == nil:
		return nil, errors.New("publisher is required")
	}

	chats := opts.Chats
	if chats == nil {
		chats = chat.NewService()
	}

	s := &Server{
		store:     opts.Store,
		publisher: opts.Publisher,
		chats:     chats,
		users:     auth.NewUserStore(opts.DB),
		sessions:  auth.NewSessionStore(opts.DB, opts.SecureCookies),
		limiter:   auth.NewSignInLimiter(),
		mux:       http.NewServeMux(),
	}

	s.routes()

	s.handler = corsOptions(opts.CORSOrigins).Handler(logging.RequestLogger(s.mux))

	return s, nil
}

// corsOptions allows the given origins, or every origin when the list is
// empty or contains "*". Cookies are only sent cross-origin to an explicit
// allow list; wildcard callers authenticate with a bearer token.
func corsOptions(origins []string) *cors.Cors {
	wildcard := len(origins) == 0 || slices.Contains(origins, "*")
	if wildcard {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: !wildcard,
	})
}

// Sessions exposes the session store for maintenance jobs.
func (s *Server) Sessions() *auth.SessionStore {
	return s.sessions
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("GET /api/cities", s.apiListCities)
	s.mux.Handle("GET /api/properties", s.identify(s.apiListProperties))
	s.mux.Handle("GET /api/properties/{id}", s.identify(s.apiGetProperty))
	s.mux.HandleFunc("GET /api/currency", s.apiFormatCurrency)
	s.mux.HandleFunc("POST /api/auth/signup", s.apiSignUp)
	s.mux.HandleFunc("POST /api/auth/signin", s.apiSignIn)

	s.mux.Handle("POST /api/auth/signout", s.protect(s.apiSignOut))
	s.mux.Handle("GET /api/profile", s.protect(s.apiGetProfile))
	s.mux.Handle("PATCH /api/profile", s.protect(s.apiUpdateProfile))
	s.mux.Handle("POST /api/properties", s.protect(s.apiPublishProperty))
	s.mux.Handle("POST /api/properties/{id}/save", s.protect(s.apiToggleSaved))
	s.mux.Handle("GET /api/saved", s.protect(s.apiListSaved))
	s.mux.Handle("GET /api/conversations", s.protect(s.apiListConversations))
	s.mux.Handle("POST /api/conversations", s.protect(s.apiOpenConversation))
	s.mux.Handle("GET /api/conversations/{id}", s.protect(s.apiGetConversation))
	s.mux.Handle("POST /api/conversations/{id}/messages", s.protect(s.apiSendMessage))
}

func (s *Server) protect(h http.HandlerFunc) http.Handler {
	return auth.RequireSession(s.sessions, h)
}

func (s *Server) identify(h http.HandlerFunc) http.Handler {
	return auth.OptionalSession(s.sessions, h)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	apiJSON(w, map[string]string{"error": msg}, code)
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// decodeJSON reads a JSON request body into v, reporting a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}
