// Package auth provides email and password accounts, SQLite-backed sessions
// and the middleware that guards the API.
package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength is the shortest password accepted at sign-up.
	MinPasswordLength = 8
	// MaxPasswordLength is the longest password bcrypt can hash, in bytes.
	MaxPasswordLength = 72
)

var (
	// ErrInvalidInput wraps every sign-up and profile validation failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailTaken is returned when signing up with a registered email.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials is returned for an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when no account has the given email.
	ErrUserNotFound = errors.New("user not found")
)

// User is an account holder.
type User struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// SignUpInput is the sign-up form.
type SignUpInput struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ProfileUpdate changes the fields that are set and leaves nil ones alone.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// UserStore manages accounts in SQLite.
type UserStore struct {
	db   *sql.DB
	cost int
}

// NewUserStore creates a user store.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db, cost: bcrypt.DefaultCost}
}

// SignUp validates the form and creates an account.
func (s *UserStore) SignUp(in SignUpInput) (*User, error) {
	name := strings.TrimSpace(in.FullName)
	email := normalizeEmail(in.Email)

	switch {
	case name == "":
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	case email == "":
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	case !validEmail(email):
		return nil, fmt.Errorf("%w: email %q is not valid", ErrInvalidInput, email)
	case len(in.Password) < MinPasswordLength:
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	case len(in.Password) > MaxPasswordLength:
		return nil, fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, MaxPasswordLength)
	case in.Password != in.ConfirmPassword:
		return nil, fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if _, err := s.db.Exec(
		"INSERT INTO users (full_name, email, password_hash) VALUES (?, ?, ?)",
		name, email, string(hash),
	); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("adding user: %w", err)
	}

	return s.GetByEmail(email)
}

// Authenticate checks an email and password and returns the account.
func (s *UserStore) Authenticate(email, password string) (*User, error) {
	email = normalizeEmail(email)

	var hash string
	err := s.db.QueryRow("SELECT password_hash FROM users WHERE email = ?", email).Scan(&hash)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.GetByEmail(email)
}

// GetByEmail returns the account registered under email.
func (s *UserStore) GetByEmail(email string) (*User, error) {
	var u User
	err := s.db.QueryRow(
		"SELECT id, full_name, email, phone, avatar, created_at FROM users WHERE email = ?",
		normalizeEmail(email),
	).Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Avatar, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return &u, nil
}

// UpdateProfile applies a partial profile update and returns the result.
func (s *UserStore) UpdateProfile(email string, upd ProfileUpdate) (*User, error) {
	u, err := s.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	if upd.FullName != nil {
		name := strings.TrimSpace(*upd.FullName)
		if name == "" {
			return nil, fmt.Errorf("%w: full name cannot be blank", ErrInvalidInput)
		}
		u.FullName = name
	}
	if upd.Phone != nil {
		u.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.Avatar != nil {
		u.Avatar = strings.TrimSpace(*upd.Avatar)
	}

	if _, err := s.db.Exec(
		"UPDATE users SET full_name = ?, phone = ?, avatar = ? WHERE id = ?",
		u.FullName, u.Phone, u.Avatar, u.ID,
	); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
