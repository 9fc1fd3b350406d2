package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

type contextKey struct{}

// UserEmailFromContext returns the email of the signed-in user, if any.
func UserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(contextKey{}).(string)
	return email, ok && email != ""
}

// WithUserEmail returns a copy of ctx carrying email.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, contextKey{}, email)
}

// RequireSession rejects requests without a valid session with a 401 JSON
// error and otherwise passes them on with the user's email in the context.
func RequireSession(sessions *SessionStore, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := sessions.Validate(r)
		if err != nil {
			if err != ErrNoSession {
				slog.Error("validating session", "error", err)
			}
			writeJSONError(w, http.StatusUnauthorized, "sign in required")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserEmail(r.Context(), email)))
	})
}

// OptionalSession passes every request on, adding the user's email to the
// context when it carries a valid session.
func OptionalSession(sessions *SessionStore, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := sessions.Validate(r)
		switch {
		case err == nil:
			r = r.WithContext(WithUserEmail(r.Context(), email))
		case err != ErrNoSession:
			slog.Error("validating session", "error", err)
		}

		next.ServeHTTP(w, r)
	})
}

// RateLimiter tracks failed attempts per client.
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	window   time.Duration
	maxFail  int
}

const (
	rateLimitWindow  = 1 * time.Minute
	rateLimitMaxFail = 10
)

// NewRateLimiter allows maxFail failures per key inside window.
func NewRateLimiter(window time.Duration, maxFail int) *RateLimiter {
	return &RateLimiter{
		attempts: make(map[string][]time.Time),
		window:   window,
		maxFail:  maxFail,
	}
}

// NewSignInLimiter returns the limiter used for sign-in attempts.
func NewSignInLimiter() *RateLimiter {
	return NewRateLimiter(rateLimitWindow, rateLimitMaxFail)
}

// Limited reports whether key has used up its failures.
func (rl *RateLimiter) Limited(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.prune(key, time.Now())) >= rl.maxFail
}

// RecordFailure records a failed attempt and returns true if key is now limited.
func (rl *RateLimiter) RecordFailure(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	valid := append(rl.prune(key, now), now)
	rl.attempts[key] = valid

	return len(valid) >= rl.maxFail
}

// Reset forgets key's failures.
func (rl *RateLimiter) Reset(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.attempts, key)
}

func (rl *RateLimiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-rl.window)

	valid := rl.attempts[key][:0]
	for _, t := range rl.attempts[key] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		delete(rl.attempts, key)
		return nil
	}
	rl.attempts[key] = valid
	return valid
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		slog.Error("encoding error response", "error", err)
	}
}
