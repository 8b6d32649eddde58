package storage

import "time"

// Event is the snapshot of a catalog event kept with a favorite. Only the
// fields the app displays are stored; the remote catalog stays the source
// of truth for everything else.
type Event struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Venue    string `json:"venue,omitempty"`
	StartsAt string `json:"startsAt,omitempty"`
	IsFree   bool   `json:"isFree,omitempty"`
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Pinned    bool      `json:"pinned,omitempty"`
	EventID   *int64    `json:"eventId,omitempty"`
	EventName string    `json:"eventName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Participation struct {
	EventID  int64     `json:"eventId"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	JoinedAt time.Time `json:"joinedAt"`
}
