// Package upload simulates the remote listing service that accepts new
// properties. Each submission waits a random delay, may fail with a network
// error, and otherwise reports the validation outcome.
package upload

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/evcraddock/rent-finder/internal/property"
)

const (
	DefaultMinDelay    = 1500 * time.Millisecond
	DefaultMaxDelay    = 2500 * time.Millisecond
	DefaultFailureRate = 0.1

	successMessage = "Property uploaded successfully!"
)

// ErrNetwork is returned when a submission is lost in transit.
var ErrNetwork = errors.New("network error occurred")

// Result is the service's answer to a submission that reached it.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Config tunes the simulated service.
type Config struct {
	MinDelay    time.Duration
	MaxDelay    time.Duration
	FailureRate float64
	// Rand drives both the delay and the failure draw. A time-seeded source
	// is used when nil.
	Rand *rand.Rand
}

// DefaultConfig returns the delays and failure rate of the live service.
func DefaultConfig() Config {
	return Config{
		MinDelay:    DefaultMinDelay,
		MaxDelay:    DefaultMaxDelay,
		FailureRate: DefaultFailureRate,
	}
}

// Uploader submits drafts to the simulated service.
type Uploader struct {
	minDelay    time.Duration
	maxDelay    time.Duration
	failureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates an uploader. A max delay below the min delay is raised to it.
func New(cfg Config) *Uploader {
	if cfg.MinDelay < 0 {
		cfg.MinDelay = 0
	}
	if cfg.MaxDelay < cfg.MinDelay {
		cfg.MaxDelay = cfg.MinDelay
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Uploader{
		minDelay:    cfg.MinDelay,
		maxDelay:    cfg.MaxDelay,
		failureRate: cfg.FailureRate,
		rng:         rng,
	}
}

// Submit sends a draft to the service. It returns ErrNetwork when the request
// is lost, ctx.Err() when ctx ends during the wait, and otherwise a Result
// that says whether the draft passed validation.
func (u *Uploader) Submit(ctx context.Context, d property.Draft) (Result, error) {
	delay, fail := u.draw()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.C:
	}

	if fail {
		return Result{}, ErrNetwork
	}

	if errs := property.ValidateDraft(d); len(errs) > 0 {
		return Result{
			Success: false,
			Message: "Validation failed: " + strings.Join(errs, ", "),
		}, nil
	}

	return Result{Success: true, Message: successMessage}, nil
}

func (u *Uploader) draw() (time.Duration, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	delay := u.minDelay
	if span := u.maxDelay - u.minDelay; span > 0 {
		delay += time.Duration(u.rng.Int63n(int64(span) + 1))
	}
	return delay, u.rng.Float64() < u.failureRate
}
