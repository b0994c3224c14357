// Package lifecycle holds the submission status state machine.
//
// Every submission starts as pending. An admin may accept (pending -> ongoing),
// reject (pending -> rejected) or complete (ongoing -> completed) it. completed
// and rejected are terminal. Clients cannot trigger any transition.
package lifecycle

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophportal/internal/domain"
)

// ErrIllegalTransition is returned for any move not in the transition table.
var ErrIllegalTransition = errors.New("illegal transition")

// ErrUnknownAction is returned by ActionTarget for unrecognised action names.
var ErrUnknownAction = errors.New("unknown action")

// Action is the admin-facing name of a transition.
type Action string

const (
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
)

// Initial is the status every new submission gets.
const Initial = domain.StatusPending

type edge struct {
	action Action
	to     domain.Status
}

// transitions is ordered so that Actions renders buttons consistently.
var transitions = map[domain.Status][]edge{
	domain.StatusPending: {
		{ActionAccept, domain.StatusOngoing},
		{ActionReject, domain.StatusRejected},
	},
	domain.StatusOngoing: {
		{ActionComplete, domain.StatusCompleted},
	},
}

// Next returns the legal successors of from. Terminal and unknown statuses
// have none.
func Next(from domain.Status) []domain.Status {
	edges := transitions[from]
	out := make([]domain.Status, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.to)
	}
	return out
}

// Actions returns the admin actions offered for a submission in status from.
func Actions(from domain.Status) []Action {
	edges := transitions[from]
	out := make([]Action, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.action)
	}
	return out
}

// CanTransition reports whether from -> to is in the table.
func CanTransition(from, to domain.Status) bool {
	for _, e := range transitions[from] {
		if e.to == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s domain.Status) bool {
	return len(transitions[s]) == 0
}

// Validate returns nil when from -> to is legal and an error wrapping
// ErrIllegalTransition otherwise.
func Validate(from, to domain.Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %s -> %q: %w", ErrIllegalTransition, from, to, domain.ErrUnknownStatus)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}

// ActionTarget maps an action name to the status it moves a submission to.
func ActionTarget(a Action) (domain.Status, error) {
	switch a {
	case ActionAccept:
		return domain.StatusOngoing, nil
	case ActionReject:
		return domain.StatusRejected, nil
	case ActionComplete:
		return domain.StatusCompleted, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, string(a))
}
