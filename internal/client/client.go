// Package client provides an HTTP client for the rent-finder API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/evcraddock/rent-finder/internal/auth"
	"github.com/evcraddock/rent-finder/internal/chat"
	"github.com/evcraddock/rent-finder/internal/listing"
	"github.com/evcraddock/rent-finder/internal/property"
)

// Client is an HTTP client for the rent-finder API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client. token may be empty for public endpoints.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is an error answer from the server.
type APIError struct {
	Status    int
	Message   string
	Retryable bool
}

func (e *APIError) Error() string {
	return e.Message
}

// IsRetryable reports whether err is a server answer worth retrying.
func IsRetryable(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Retryable
}

// Listing is a property as the API returns it.
type Listing struct {
	property.Property
	PriceLabel string `json:"price_label"`
	Saved      bool   `json:"saved"`
}

// City is a city with its currency and listing count.
type City struct {
	Name     property.City `json:"name"`
	Currency string        `json:"currency"`
	Count    int           `json:"count"`
}

// Session is the answer to a sign-up or sign-in.
type Session struct {
	Token string     `json:"token"`
	User  *auth.User `json:"user"`
}

// ListOptions controls filtering for ListProperties.
type ListOptions struct {
	City  string
	Type  string
	Query string
}

// PublishRequest is a new listing. PriceText is used when Price is zero.
type PublishRequest struct {
	property.Draft
	PriceText string `json:"price_text,omitempty"`
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

// Cities returns the cities with listings.
func (c *Client) Cities(ctx context.Context) ([]City, error) {
	var cities []City
	if err := c.get(ctx, "/api/cities", &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// ListProperties searches the catalog.
func (c *Client) ListProperties(ctx context.Context, opts ListOptions) ([]Listing, error) {
	params := url.Values{}
	if opts.City != "" {
		params.Set("city", opts.City)
	}
	if opts.Type != "" {
		params.Set("type", opts.Type)
	}
	if opts.Query != "" {
		params.Set("q", opts.Query)
	}

	path := "/api/properties"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var props []Listing
	if err := c.get(ctx, path, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// GetProperty returns one listing.
func (c *Client) GetProperty(ctx context.Context, id int64) (*Listing, error) {
	var p Listing
	if err := c.get(ctx, "/api/properties/"+strconv.FormatInt(id, 10), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FormatCurrency asks the server to format an amount for a city.
func (c *Client) FormatCurrency(ctx context.Context, amount, city string) (string, error) {
	params := url.Values{"amount": {amount}, "city": {city}}
	var resp struct {
		Formatted string `json:"formatted"`
	}
	if err := c.get(ctx, "/api/currency?"+params.Encode(), &resp); err != nil {
		return "", err
	}
	return resp.Formatted, nil
}

// PublishProperty submits a new listing.
func (c *Client) PublishProperty(ctx context.Context, req PublishRequest) (*listing.Published, error) {
	var out listing.Published
	if err := c.send(ctx, http.MethodPost, "/api/properties", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleSaved flips a listing's saved state and returns the new state.
func (c *Client) ToggleSaved(ctx context.Context, id int64) (bool, error) {
	var resp struct {
		Saved bool `json:"saved"`
	}
	path := fmt.Sprintf("/api/properties/%d/save", id)
	if err := c.send(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.Saved, nil
}

// ListSaved returns the saved listings.
func (c *Client) ListSaved(ctx context.Context) ([]Listing, error) {
	var props []Listing
	if err := c.get(ctx, "/api/saved", &props); err != nil {
		return nil, err
	}
	return props, nil
}

// ListConversations returns the inbox, filtered by seller name when query
// is set.
func (c *Client) ListConversations(ctx context.Context, query string) ([]chat.Summary, error) {
	path := "/api/conversations"
	if query != "" {
		path += "?" + url.Values{"q": {query}}.Encode()
	}
	var sums []chat.Summary
	if err := c.get(ctx, path, &sums); err != nil {
		return nil, err
	}
	return sums, nil
}

// OpenConversation starts or resumes the conversation about a listing.
func (c *Client) OpenConversation(ctx context.Context, propertyID int64, sellerName string) (*chat.Conversation, error) {
	body := map[string]interface{}{"property_id": propertyID, "seller_name": sellerName}
	var conv chat.Conversation
	if err := c.send(ctx, http.MethodPost, "/api/conversations", body, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetConversation returns a conversation with its messages.
func (c *Client) GetConversation(ctx context.Context, id int64) (*chat.Conversation, error) {
	var conv chat.Conversation
	if err := c.get(ctx, fmt.Sprintf("/api/conversations/%d", id), &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// SendMessage posts a message to a conversation.
func (c *Client) SendMessage(ctx context.Context, id int64, text string) (*chat.Message, error) {
	var m chat.Message
	path := fmt.Sprintf("/api/conversations/%d/messages", id)
	if err := c.send(ctx, http.MethodPost, path, map[string]string{"text": text}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// SignUp creates an account and returns its first session.
func (c *Client) SignUp(ctx context.Context, in auth.SignUpInput) (*Session, error) {
	var s Session
	if err := c.send(ctx, http.MethodPost, "/api/auth/signup", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SignIn starts a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var s Session
	if err := c.send(ctx, http.MethodPost, "/api/auth/signin", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SignOut ends the client's session.
func (c *Client) SignOut(ctx context.Context) error {
	return c.send(ctx, http.MethodPost, "/api/auth/signout", nil, nil)
}

// Profile returns the signed-in user.
func (c *Client) Profile(ctx context.Context) (*auth.User, error) {
	var u auth.User
	if err := c.get(ctx, "/api/profile", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile changes the signed-in user's profile.
func (c *Client) UpdateProfile(ctx context.Context, upd auth.ProfileUpdate) (*auth.User, error) {
	var u auth.User
	if err := c.send(ctx, http.MethodPatch, "/api/profile", upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// send performs a request with an optional JSON body and decodes the response.
func (c *Client) send(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, result)
}

// do executes an HTTP request with auth header and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "error", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: "server error: " + http.StatusText(resp.StatusCode)}
		var errResp struct {
			Error     string `json:"error"`
			Retryable bool   `json:"retryable"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
			apiErr.Retryable = errResp.Retryable
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
