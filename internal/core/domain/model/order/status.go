package order

import (
	"fmt"
	"strings"

	"pizzastore/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> In Progress ──> Out for Delivery ──> Completed
//	   │             │                 │
//	   └─────────────┴─────────────────┴──────────> Canceled
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Pending
	InProgress
	OutForDelivery
	Completed
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:        "Pending",
		InProgress:     "In Progress",
		OutForDelivery: "Out for Delivery",
		Completed:      "Completed",
		Canceled:       "Canceled",
	}
}

func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no successors
	return map[Status][]Status{
		Pending:        {InProgress, Canceled},
		InProgress:     {OutForDelivery, Canceled},
		OutForDelivery: {Completed, Canceled},
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InProgress, OutForDelivery, Completed, Canceled}
}

// ParseStatus accepts the display name ignoring case, spaces, '-' and '_',
// so "In Progress", "in_progress" and "InProgress" are the same status.
func ParseStatus(raw string) (Status, error) {
	key := statusKey(raw)
	for status, name := range getStatusStrings() {
		if statusKey(name) == key {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%w: %q", ErrInvalidStatus, raw))
}

func statusKey(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%w: %d", ErrInvalidStatus, s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// ValidateTransition checks that next is a legal successor of s.
// Staying in the same status is not a transition and is rejected too.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return nil
		}
	}
	return errs.NewConflictErrorWithCause(
		"status",
		s.String(),
		fmt.Errorf("%w: %s -> %s", ErrTransitionIsNotAllowed, s, next),
	)
}
