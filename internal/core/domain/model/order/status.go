package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──────┬──> OutForDelivery ──> Delivered
//	   │          │
//	   └> InProgress
//	   │          │
//	   └──────────┴──> Cancelled
//
// Pending orders have no driver yet. InProgress orders have a driver
// assigned but are still being prepared. OutForDelivery orders are on the
// road. Delivered and Cancelled are final states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a placed order with no driver assigned.
	Pending

	// InProgress indicates a driver has been assigned and the order is being prepared.
	InProgress

	// OutForDelivery indicates the order has left the kitchen.
	OutForDelivery

	// Delivered indicates the order reached the customer. Final state.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		InProgress:     "InProgress",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		InProgress:     "InProgress",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is one of the named lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a stored status name back to its Status value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%s is not a valid status", s))
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// AssignDriver transitions the status to InProgress.
//
// Valid from Pending only. Orders that already have a driver or have left
// the kitchen cannot be assigned again.
func (s Status) AssignDriver() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign a driver", s.String()),
		)
	}
	return InProgress, nil
}

// StartDelivery transitions the status to OutForDelivery.
//
// Valid from Pending and InProgress. A pending order without a driver may
// still go out, handled by in-house staff.
func (s Status) StartDelivery() (Status, error) {
	if s != Pending && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start delivery", s.String()),
		)
	}
	return OutForDelivery, nil
}

// Complete transitions the status to Delivered. Valid from OutForDelivery only.
func (s Status) Complete() (Status, error) {
	if s != OutForDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled. Valid from any non-final state.
func (s Status) Cancel() (Status, error) {
	if s.IsFinal() || s == Unknown {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
