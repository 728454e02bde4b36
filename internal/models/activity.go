package models

import "time"

// ActivityEvent is a single entry in the account activity trail.
type ActivityEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Type       string    `json:"type"`  // REGISTER | LOGIN | LOGIN_FAILED
	Email      string    `json:"email"` // account the event refers to
	Detail     string    `json:"detail,omitempty"`
}
