// Package supabase is a thin PostgREST client for the Supabase store
// that holds the raw per-day records. Repositories build filter maps in
// PostgREST syntax (eq., gte., order) and decode the JSON bodies
// themselves; this package only handles transport and auth headers.
package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the Supabase REST and auth endpoints with the
// service-role key.
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a client for the given project URL and service key.
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// AuthUser is the identity Supabase resolves from a user JWT.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Query runs a filtered select against a table. The query map uses
// PostgREST operator syntax, e.g. {"user_id": "eq.<id>", "order": "entry_date.asc"}.
func (c *Client) Query(table string, query map[string]string) ([]byte, error) {
	req, err := c.newRequest(http.MethodGet, c.restURL(table), nil)
	if err != nil {
		return nil, err
	}
	applyQuery(req, query)
	return c.do(req)
}

// Insert inserts one or more records into a table and returns the
// created representation.
func (c *Client) Insert(table string, data any) ([]byte, error) {
	req, err := c.newRequest(http.MethodPost, c.restURL(table), data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")
	return c.do(req)
}

// Upsert inserts or updates records, detecting conflicts on the given
// comma-separated column list (e.g. "user_id,entry_date").
func (c *Client) Upsert(table string, data any, onConflict string) ([]byte, error) {
	req, err := c.newRequest(http.MethodPost, c.restURL(table), data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation,resolution=merge-duplicates")
	applyQuery(req, map[string]string{"on_conflict": onConflict})
	return c.do(req)
}

// UpdateWhere patches all records matching the filter.
func (c *Client) UpdateWhere(table string, query map[string]string, data any) ([]byte, error) {
	req, err := c.newRequest(http.MethodPatch, c.restURL(table), data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")
	applyQuery(req, query)
	return c.do(req)
}

// DeleteWhere deletes all records matching the filter.
func (c *Client) DeleteWhere(table string, query map[string]string) error {
	req, err := c.newRequest(http.MethodDelete, c.restURL(table), nil)
	if err != nil {
		return err
	}
	applyQuery(req, query)
	_, err = c.do(req)
	return err
}

// VerifyToken resolves a user JWT against the Supabase auth endpoint.
func (c *Client) VerifyToken(token string) (*AuthUser, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/auth/v1/user", c.URL), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+token)

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	var user AuthUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

func (c *Client) restURL(table string) string {
	return fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
}

func (c *Client) newRequest(method, url string, data any) (*http.Request, error) {
	var body io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func applyQuery(req *http.Request, query map[string]string) {
	q := req.URL.Query()
	for key, value := range query {
		q.Add(key, value)
	}
	req.URL.RawQuery = q.Encode()
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("supabase error (status %d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}
