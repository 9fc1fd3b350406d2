package web

import (
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/evcraddock/rent-finder/internal/auth"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string     `json:"token"`
	User  *auth.User `json:"user"`
}

// apiSignUp creates an account and signs it in.
func (s *Server) apiSignUp(w http.ResponseWriter, r *http.Request) {
	var req auth.SignUpInput
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := s.users.SignUp(req)
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, auth.ErrEmailTaken):
		apiError(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		slog.Error("signing up", "error", err)
		apiError(w, "sign up failed", http.StatusInternalServerError)
		return
	}

	s.startSession(w, u, http.StatusCreated)
}

// apiSignIn checks credentials and starts a session.
func (s *Server) apiSignIn(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	if s.limiter.Limited(ip) {
		apiError(w, "too many failed sign-in attempts, try again later", http.StatusTooManyRequests)
		return
	}

	var req signInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := s.users.Authenticate(req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		s.limiter.RecordFailure(ip)
		apiError(w, err.Error(), http.StatusUnauthorized)
		return
	}
	if err != nil {
		slog.Error("signing in", "error", err)
		apiError(w, "sign in failed", http.StatusInternalServerError)
		return
	}

	s.limiter.Reset(ip)
	s.startSession(w, u, http.StatusOK)
}

func (s *Server) startSession(w http.ResponseWriter, u *auth.User, code int) {
	token, err := s.sessions.Create(w, u.Email)
	if err != nil {
		slog.Error("creating session", "error", err)
		apiError(w, "creating session failed", http.StatusInternalServerError)
		return
	}
	apiJSON(w, sessionResponse{Token: token, User: u}, code)
}

// apiSignOut ends the current session.
func (s *Server) apiSignOut(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Destroy(w, r); err != nil {
		slog.Error("destroying session", "error", err)
		apiError(w, "sign out failed", http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]string{"status": "signed out"}, http.StatusOK)
}

// apiGetProfile returns the signed-in user's profile.
func (s *Server) apiGetProfile(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.UserEmailFromContext(r.Context())

	u, err := s.users.GetByEmail(email)
	if err != nil {
		s.profileError(w, err)
		return
	}
	apiJSON(w, u, http.StatusOK)
}

// apiUpdateProfile applies a partial profile update.
func (s *Server) apiUpdateProfile(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.UserEmailFromContext(r.Context())

	var upd auth.ProfileUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}

	u, err := s.users.UpdateProfile(email, upd)
	if err != nil {
		s.profileError(w, err)
		return
	}
	apiJSON(w, u, http.StatusOK)
}

func (s *Server) profileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		apiError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, auth.ErrUserNotFound):
		apiError(w, err.Error(), http.StatusNotFound)
	default:
		slog.Error("loading profile", "error", err)
		apiError(w, "loading profile failed", http.StatusInternalServerError)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
