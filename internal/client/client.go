// Package client is the ledger client: it loads the entry collection
// once per session, owns it as a versioned snapshot, and folds the
// server's authoritative responses back in after every mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/angulartv/regisstros/internal/ledger"
)

// Client talks to the registros API.
type Client struct {
	baseURL string
	http    *http.Client
	token   string

	mu  sync.Mutex
	col ledger.Collection
}

// Option adjusts a Client at construction.
type Option func(*Client)

// WithToken sets the session token of an earlier login.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the current session token.
func (c *Client) Token() string { return c.token }

// envelope is the server's uniform response shape.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do runs one request/response round trip. A 401 from anywhere maps to
// ErrUnauthorized; other failures become TransportErrors.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	op := method + " " + path

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		return &TransportError{Op: op, Err: fmt.Errorf("server: %s", env.Message)}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return nil
}

// Login exchanges the shared secret for a session token, which is kept
// on the client and returned for persistence.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{"password": password}, &out)
	if err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}

// Logout revokes the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/logout", nil, nil)
}

// Load fetches the whole collection (server orders it date descending)
// and snapshots it. The collection is loaded once per session; all
// later operations work against the snapshot and point mutations.
func (c *Client) Load(ctx context.Context) (ledger.Collection, error) {
	var out struct {
		Items []ledger.Entry `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/entries", nil, &out); err != nil {
		return ledger.Collection{}, err
	}

	col := ledger.NewCollection(out.Items)
	c.mu.Lock()
	c.col = col
	c.mu.Unlock()
	return col, nil
}

// Collection returns the current snapshot.
func (c *Client) Collection() ledger.Collection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.col
}

// Totals runs the balance engine over the current snapshot.
func (c *Client) Totals() ledger.Totals {
	return c.Collection().Totals()
}

// entryPayload is the full field set sent on create and update.
func entryPayload(e ledger.Entry) map[string]interface{} {
	return map[string]interface{}{
		"date":         e.Date,
		"hours":        e.Hours,
		"type":         e.Type,
		"note":         e.Note,
		"requiresMemo": e.RequiresMemo,
		"memoDone":     e.MemoDone,
	}
}

// create posts one entry without touching the snapshot; Create and the
// import fan-out fold results in themselves.
func (c *Client) create(ctx context.Context, e ledger.Entry) (ledger.Entry, error) {
	var out struct {
		Entry ledger.Entry `json:"entry"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/entries", entryPayload(e), &out); err != nil {
		return ledger.Entry{}, err
	}
	return out.Entry, nil
}

// Create validates and submits a new entry, prepending the server's
// returned representation to the snapshot.
func (c *Client) Create(ctx context.Context, e ledger.Entry) (ledger.Entry, error) {
	if strings.TrimSpace(e.Date) == "" {
		return ledger.Entry{}, &ledger.ValidationError{Field: "date", Reason: "required"}
	}

	created, err := c.create(ctx, e)
	if err != nil {
		return ledger.Entry{}, err
	}

	c.mu.Lock()
	c.col = c.col.Prepend(created)
	c.mu.Unlock()
	return created, nil
}

// Update submits the full field set for an existing entry and replaces
// the local copy with the server's response.
func (c *Client) Update(ctx context.Context, e ledger.Entry) (ledger.Entry, error) {
	if e.ID == 0 {
		return ledger.Entry{}, &ledger.ValidationError{Field: "id", Reason: "required"}
	}
	if strings.TrimSpace(e.Date) == "" {
		return ledger.Entry{}, &ledger.ValidationError{Field: "date", Reason: "required"}
	}

	var out struct {
		Entry ledger.Entry `json:"entry"`
	}
	path := fmt.Sprintf("/api/entries/%d", e.ID)
	if err := c.do(ctx, http.MethodPut, path, entryPayload(e), &out); err != nil {
		return ledger.Entry{}, err
	}

	c.mu.Lock()
	c.col = c.col.Replace(out.Entry)
	c.mu.Unlock()
	return out.Entry, nil
}

// Delete removes an entry permanently, then drops it from the snapshot.
func (c *Client) Delete(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/entries/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}

	c.mu.Lock()
	c.col = c.col.Remove(id)
	c.mu.Unlock()
	return nil
}

// ToggleMemo flips memoDone on an entry that requires a memo.
func (c *Client) ToggleMemo(ctx context.Context, id uint) (ledger.Entry, error) {
	c.mu.Lock()
	e, ok := c.col.Find(id)
	c.mu.Unlock()
	if !ok {
		return ledger.Entry{}, ErrNotFound
	}
	if !e.RequiresMemo {
		return e, nil
	}
	e.MemoDone = !e.MemoDone
	return c.Update(ctx, e)
}

// ExportCSV writes the current snapshot through the CSV codec.
func (c *Client) ExportCSV(w io.Writer) error {
	return ledger.WriteCSV(w, c.Collection().Entries())
}
