package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/evcraddock/rent-finder/internal/catalog"
	"github.com/evcraddock/rent-finder/internal/property"
	"github.com/evcraddock/rent-finder/internal/upload"
)

// scriptedSubmitter replays a fixed sequence of outcomes.
type scriptedSubmitter struct {
	steps []step
	calls int
}

type step struct {
	res upload.Result
	err error
}

func (s *scriptedSubmitter) Submit(ctx context.Context, d property.Draft) (upload.Result, error) {
	i := s.calls
	if i >= len(s.steps) {
		i = len(s.steps) - 1
	}
	s.calls++
	return s.steps[i].res, s.steps[i].err
}

var (
	accepted = step{res: upload.Result{Success: true, Message: "Property uploaded successfully!"}}
	rejected = step{res: upload.Result{Success: false, Message: "Validation failed: Exactly 3 images are required"}}
	lost     = step{err: upload.ErrNetwork}
)

func lagosDraft() property.Draft {
	return property.Draft{
		Title:       "Harbour View Flat",
		Location:    "Lekki, Lagos",
		Price:       90000,
		Type:        property.Apartment,
		City:        property.Lagos,
		Images:      []string{"a.jpg", "b.jpg", "c.jpg"},
		Description: "Third floor flat.",
	}
}

func TestPublishSuccess(t *testing.T) {
	store := catalog.NewStore(property.Seed())
	p := NewPublisher(&scriptedSubmitter{steps: []step{accepted}}, store)

	out, err := p.Publish(context.Background(), lagosDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != 14 {
		t.Errorf("id = %d, want 14", out.ID)
	}
	if out.Message != "Property uploaded successfully!" {
		t.Errorf("message = %q", out.Message)
	}
	if got := len(store.PropertiesByCity(property.Lagos)); got != 5 {
		t.Errorf("Lagos has %d listings, want 5", got)
	}
}

func TestPublishTransientLeavesStoreUnchanged(t *testing.T) {
	store := catalog.NewStore(property.Seed())
	p := NewPublisher(&scriptedSubmitter{steps: []step{lost}}, store)

	_, err := p.Publish(context.Background(), lagosDraft())
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("err = %v, want ErrTransient", err)
	}
	if !errors.Is(err, upload.ErrNetwork) {
		t.Errorf("err = %v, want it to wrap ErrNetwork", err)
	}

	var te *TransientError
	if !errors.As(err, &te) {
		t.Errorf("err = %T, want *TransientError", err)
	}
	if got := len(store.AllProperties()); got != 13 {
		t.Errorf("catalog has %d listings, want 13", got)
	}
}

func TestPublishValidationFailure(t *testing.T) {
	store := catalog.NewStore(property.Seed())
	p := NewPublisher(&scriptedSubmitter{steps: []step{rejected}}, store)

	_, err := p.Publish(context.Background(), lagosDraft())

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if ve.Message != "Validation failed: Exactly 3 images are required" {
		t.Errorf("message = %q", ve.Message)
	}
	if errors.Is(err, ErrTransient) {
		t.Error("validation failure reported as transient")
	}
	if got := len(store.AllProperties()); got != 13 {
		t.Errorf("catalog has %d listings, want 13", got)
	}
}

func TestPublishCanceledIsNotTransient(t *testing.T) {
	store := catalog.NewStore(property.Seed())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPublisher(&scriptedSubmitter{steps: []step{{err: context.Canceled}}}, store)

	_, err := p.Publish(ctx, lagosDraft())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if errors.Is(err, ErrTransient) {
		t.Error("cancellation reported as transient")
	}
}

func TestPublishWithRetry(t *testing.T) {
	tests := []struct {
		name      string
		steps     []step
		attempts  int
		wantCalls int
		wantErr   error
		wantAdded bool
	}{
		{"first try", []step{accepted}, 3, 1, nil, true},
		{"recovers after transient", []step{lost, lost, accepted}, 3, 3, nil, true},
		{"gives up", []step{lost, lost, lost, accepted}, 3, 3, ErrTransient, false},
		{"validation not retried", []step{rejected, accepted}, 3, 1, nil, false},
		{"zero attempts tries once", []step{lost, accepted}, 0, 1, ErrTransient, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := catalog.NewStore(property.Seed())
			sub := &scriptedSubmitter{steps: tt.steps}
			p := NewPublisher(sub, store)

			out, err := p.PublishWithRetry(context.Background(), lagosDraft(), tt.attempts)

			if sub.calls != tt.wantCalls {
				t.Errorf("submit called %d times, want %d", sub.calls, tt.wantCalls)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantAdded {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if _, found := store.PropertyByID(out.ID); !found {
					t.Errorf("published id %d not in catalog", out.ID)
				}
			} else if got := len(store.AllProperties()); got != 13 {
				t.Errorf("catalog has %d listings, want 13", got)
			}
		})
	}
}

func TestPublishWithRealUploader(t *testing.T) {
	store := catalog.NewStore(property.Seed())
	p := NewPublisher(upload.New(upload.Config{}), store)

	d := lagosDraft()
	d.Images = d.Images[:2]

	_, err := p.Publish(context.Background(), d)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestNewPublisherPanicsOnNil(t *testing.T) {
	store := catalog.NewStore(nil)

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil submitter", func() { NewPublisher(nil, store) }},
		{"nil store", func() { NewPublisher(&scriptedSubmitter{}, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
