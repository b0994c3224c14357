// Package domain defines the portal entities shared by the server and the
// dashboard sessions: submissions, their statuses, identities, tenants and
// the scopes that restrict what a session may see.
package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownStatus is returned when a string is not one of the defined statuses.
var ErrUnknownStatus = errors.New("unknown status")

// Status is the lifecycle state of a submission.
type Status string

const (
	StatusPending   Status = "pending"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// Statuses returns every defined status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusOngoing, StatusCompleted, StatusRejected}
}

// Valid reports whether s is one of the four defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusOngoing, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// ParseStatus converts raw into a Status, rejecting any other string.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// Submission is a work request filed by a client.
//
// OwnerID and Tenant are stamped at creation from the submitter's session and
// never change afterwards; only Status is mutable, and only by an admin.
type Submission struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"client_id"`
	Tenant        string    `json:"client_name"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	AttachmentRef string    `json:"file_url,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
