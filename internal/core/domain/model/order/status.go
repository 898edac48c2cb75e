package order

import (
	"errors"
	"fmt"

	"carrybee/internal/pkg/errs"
)

// ErrIllegalTransition is the rejection for any status change request not
// present in the legality table, including requesting the current status
// again. It surfaces to callers as a user-visible conflict and is not
// retried.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ──> preparing ──> out_for_delivery ──> delivered
//	   │            │                │
//	   ├────────────┴────────────────┴──> cancelled
//	   └─────────────────────────────────> delivered (customer self-report)
//
// delivered and cancelled are terminal. Every edge requires an admin actor
// except the direct pending -> delivered edge, which a customer may take on
// their own order (self-reported delivery confirmation; kept as the
// storefront behaves, pending product review).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a freshly composed order.
	Pending

	// Preparing indicates the merchant accepted the order and is preparing it.
	Preparing

	// OutForDelivery indicates the order left the merchant.
	OutForDelivery

	// Delivered is the terminal success status.
	Delivered

	// Cancelled is the terminal abort status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// legalEdges is the complete transition legality table. An edge absent here
// is illegal regardless of who asks.
func legalEdges() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing edges
	return map[Status][]Status{
		Pending:        {Preparing, Cancelled, Delivered},
		Preparing:      {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
	}
}

// StatusFromString parses the persisted status name.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the Status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case status name, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransition reports whether the edge s -> target is in the legality
// table. Requesting the current status again is not a legal edge.
func (s Status) CanTransition(target Status) bool {
	for _, to := range legalEdges()[s] {
		if to == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge s -> target and returns the new status.
// Returns ErrIllegalTransition (with the offending edge as cause) when the
// edge is not legal.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransition(target) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, target)
	}

	return target, nil
}
