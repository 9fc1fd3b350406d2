// Package listing runs the add-property flow: submit a draft to the upload
// service and, when it is accepted, add it to the catalog.
package listing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/evcraddock/rent-finder/internal/property"
	"github.com/evcraddock/rent-finder/internal/upload"
)

// ErrTransient matches every failure worth retrying.
var ErrTransient = errors.New("transient upload failure")

// TransientError wraps a failure that never reached a validation verdict.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("uploading property: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// Is reports TransientError as ErrTransient.
func (e *TransientError) Is(target error) bool { return target == ErrTransient }

// ValidationError is the upload service rejecting a draft.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Submitter sends drafts to the upload service.
type Submitter interface {
	Submit(ctx context.Context, d property.Draft) (upload.Result, error)
}

// Adder stores an accepted draft and returns its assigned ID.
type Adder interface {
	AddProperty(d property.Draft) int64
}

// Publisher ties a submitter to the catalog.
type Publisher struct {
	submitter Submitter
	store     Adder
}

// NewPublisher creates a publisher. Both dependencies are required.
func NewPublisher(submitter Submitter, store Adder) *Publisher {
	if submitter == nil {
		panic("listing: nil submitter")
	}
	if store == nil {
		panic("listing: nil store")
	}
	return &Publisher{submitter: submitter, store: store}
}

// Published is the outcome of a successful publish.
type Published struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Publish submits d and adds it to the catalog when the service accepts it.
// The catalog is left untouched on any error.
func (p *Publisher) Publish(ctx context.Context, d property.Draft) (Published, error) {
	res, err := p.submitter.Submit(ctx, d)
	if err != nil {
		if ctx.Err() != nil {
			return Published{}, fmt.Errorf("uploading property: %w", err)
		}
		return Published{}, &TransientError{Err: err}
	}

	if !res.Success {
		return Published{}, &ValidationError{Message: res.Message}
	}

	id := p.store.AddProperty(d)
	slog.Info("property published", "id", id, "city", d.City, "title", d.Title)

	return Published{ID: id, Message: res.Message}, nil
}

// PublishWithRetry calls Publish up to attempts times, retrying only
// transient failures.
func (p *Publisher) PublishWithRetry(ctx context.Context, d property.Draft, attempts int) (Published, error) {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 1; i <= attempts; i++ {
		var out Published
		out, err = p.Publish(ctx, d)
		if err == nil || !errors.Is(err, ErrTransient) {
			return out, err
		}
		slog.Warn("publish attempt failed", "attempt", i, "of", attempts, "error", err)
	}
	return Published{}, err
}
