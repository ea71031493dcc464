// Package client is a small Go client for the tasklight API: a typed HTTP
// client plus a session state cache that mirrors server state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TaskPatch carries a partial update; nil fields are not sent.
type TaskPatch struct {
	Title    *string `json:"title,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	// UserID is attached to task requests as the ownership credential.
	UserID string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.UserID != "" {
		req.Header.Set("x-user-id", c.UserID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = "unknown error"
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Signup(ctx context.Context, username, email, password string) (*User, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Login authenticates with a username or an email in the username field.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var out struct {
		Tasks []Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, title, priority, status string) (*Task, error) {
	body := map[string]string{"title": title}
	if priority != "" {
		body["priority"] = priority
	}
	if status != "" {
		body["status"] = status
	}
	var out struct {
		Task Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodPost, "/tasks", body, &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	var out struct {
		Task Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodGet, "/tasks/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*Task, error) {
	var out struct {
		Task Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
}
