// Package events fetches the remote event catalog. The catalog is a
// read-only collaborator: one fetch per command, no retry or caching.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/busrayesinn/eventra/internal/storage"
)

const DefaultBaseURL = "https://backend.etkinlik.io/api/v2"

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type listResponse struct {
	Items []eventItem `json:"items"`
}

type eventItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartAt   string `json:"start_at"`
	PosterURL string `json:"poster_url"`
	IsFree    bool   `json:"is_free"`
	Venue     *struct {
		Name string `json:"name"`
	} `json:"venue"`
	Category *struct {
		Name string `json:"name"`
	} `json:"category"`
}

// List fetches the current events and maps them to local snapshots.
func (c *Client) List(ctx context.Context) ([]storage.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events", nil)
	if err != nil {
		return nil, fmt.Errorf("events request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("X-Etkinlik-Token", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("events fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("events fetch: unexpected status %s", resp.Status)
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("events decode: %w", err)
	}

	out := make([]storage.Event, 0, len(payload.Items))
	for _, it := range payload.Items {
		ev := storage.Event{
			ID:       it.ID,
			Name:     it.Name,
			StartsAt: it.StartAt,
			IsFree:   it.IsFree,
		}
		if it.Venue != nil {
			ev.Venue = it.Venue.Name
		}
		if it.Category != nil {
			ev.Category = it.Category.Name
		}
		out = append(out, ev)
	}
	return out, nil
}
