package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetDeliveryBoardQueryIsNotConstructed = errors.New(
	"GetDeliveryBoardQuery must be created via NewGetDeliveryBoardQuery constructor",
)

// GetDeliveryBoardQuery retrieves every driver with a human-readable
// availability status for the dispatch board.
type GetDeliveryBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryBoardQuery creates a query to retrieve the delivery board.
// This is a parameterless query.
func NewGetDeliveryBoardQuery() GetDeliveryBoardQuery {
	return GetDeliveryBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryBoardQueryIsNotConstructed)
}

// GetDeliveryBoardQueryResponse represents one driver on the board.
// Availability is "Available" or "Unavailable for N more minutes".
type GetDeliveryBoardQueryResponse struct {
	ID               kernel.UUID
	Name             string
	PostalCode       string
	IsAvailable      bool
	LastDeliveryTime *time.Time
	Availability     string
}
