package client

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/evcraddock/rent-finder/internal/auth"
	"github.com/evcraddock/rent-finder/internal/catalog"
	"github.com/evcraddock/rent-finder/internal/db"
	"github.com/evcraddock/rent-finder/internal/listing"
	"github.com/evcraddock/rent-finder/internal/property"
	"github.com/evcraddock/rent-finder/internal/upload"
	"github.com/evcraddock/rent-finder/internal/web"
)

func TestListPropertiesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/properties" {
			t.Errorf("path = %q, want /api/properties", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("city") != "Addis Ababa" || q.Get("type") != "House" || q.Get("q") != "garden" {
			t.Errorf("query = %q", r.URL.RawQuery)
		}
		if r.Header.Get("Authorization") != "Bearer testtoken" {
			t.Error("expected Bearer testtoken")
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]Listing{{Property: property.Property{ID: 9, Title: "Family House with Garden"}, PriceLabel: "ETB 25,000"}}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "testtoken")
	props, err := c.ListProperties(context.Background(), ListOptions{City: "Addis Ababa", Type: "House", Query: "garden"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(props) != 1 || props[0].ID != 9 || props[0].PriceLabel != "ETB 25,000" {
		t.Errorf("props = %+v", props)
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h := r.Header.Get("Authorization"); h != "" {
			t.Errorf("Authorization = %q, want none", h)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := New(srv.URL, "").Health(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
}

func TestAPIErrors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantMsg       string
		wantRetryable bool
	}{
		{"json error", http.StatusNotFound, `{"error":"property not found"}`, "property not found", false},
		{"retryable", http.StatusServiceUnavailable, `{"error":"uploading property: network error occurred","retryable":true}`, "uploading property: network error occurred", true},
		{"plain body", http.StatusInternalServerError, "boom", "server error: Internal Server Error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, "t").GetProperty(context.Background(), 1)

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %v, want *APIError", err)
			}
			if apiErr.Status != tt.status || apiErr.Message != tt.wantMsg {
				t.Errorf("err = %+v", apiErr)
			}
			if IsRetryable(err) != tt.wantRetryable {
				t.Errorf("IsRetryable = %v, want %v", IsRetryable(err), tt.wantRetryable)
			}
		})
	}
}

func TestConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := New(url, "").Health(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if IsRetryable(err) {
		t.Error("connection errors are not server answers")
	}
}

// liveServer runs the real API over a fresh database.
func liveServer(t *testing.T) *httptest.Server {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if cerr := d.Close(); cerr != nil {
			t.Errorf("close db: %v", cerr)
		}
	})

	store := catalog.NewStore(property.Seed())
	uploader := upload.New(upload.Config{Rand: rand.New(rand.NewSource(1))})
	api, err := web.NewServer(web.Options{
		DB:        d,
		Store:     store,
		Publisher: listing.NewPublisher(uploader, store),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return srv
}

func TestAgainstServer(t *testing.T) {
	srv := liveServer(t)
	ctx := context.Background()

	sess, err := New(srv.URL, "").SignUp(ctx, auth.SignUpInput{
		FullName:        "Wanjiru Kamau",
		Email:           "wanjiru@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}

	c := New(srv.URL, sess.Token)

	cities, err := c.Cities(ctx)
	if err != nil {
		t.Fatalf("cities: %v", err)
	}
	if len(cities) != 3 || cities[1].Name != property.Nairobi {
		t.Errorf("cities = %+v", cities)
	}

	formatted, err := c.FormatCurrency(ctx, "45000", "Nairobi")
	if err != nil || formatted != "KES 45,000" {
		t.Errorf("format = %q, %v", formatted, err)
	}

	out, err := c.PublishProperty(ctx, PublishRequest{
		Draft: property.Draft{
			Title:       "Garden Flat",
			Location:    "Kilimani, Nairobi",
			Type:        property.Apartment,
			City:        property.Nairobi,
			Images:      []string{"1.jpg", "2.jpg", "3.jpg"},
			Description: "Ground floor.",
		},
		PriceText: "KES 60,000",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if out.ID != 14 {
		t.Errorf("id = %d, want 14", out.ID)
	}

	p, err := c.GetProperty(ctx, out.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Price != 60000 || p.PriceLabel != "KES 60,000" {
		t.Errorf("price = %d label = %q", p.Price, p.PriceLabel)
	}

	saved, err := c.ToggleSaved(ctx, out.ID)
	if err != nil || !saved {
		t.Fatalf("toggle = %v, %v", saved, err)
	}
	list, err := c.ListSaved(ctx)
	if err != nil || len(list) != 1 || list[0].ID != out.ID {
		t.Errorf("saved = %+v, %v", list, err)
	}

	conv, err := c.OpenConversation(ctx, out.ID, "Landlord")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := c.SendMessage(ctx, conv.ID, "Hello"); err != nil {
		t.Fatalf("send: %v", err)
	}
	full, err := c.GetConversation(ctx, conv.ID)
	if err != nil || len(full.Messages) != 1 {
		t.Errorf("conversation = %+v, %v", full, err)
	}
	sums, err := c.ListConversations(ctx, "landlord")
	if err != nil || len(sums) != 1 {
		t.Errorf("summaries = %+v, %v", sums, err)
	}

	phone := "+254 700 111 222"
	u, err := c.UpdateProfile(ctx, auth.ProfileUpdate{Phone: &phone})
	if err != nil || u.Phone != phone {
		t.Errorf("profile = %+v, %v", u, err)
	}

	if err := c.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, err := c.Profile(ctx); err == nil {
		t.Error("expected error after sign out")
	}

	again, err := New(srv.URL, "").SignIn(ctx, "wanjiru@example.com", "password123")
	if err != nil || again.Token == "" {
		t.Errorf("sign in = %+v, %v", again, err)
	}
}
