package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pizzeria/internal/core/domain/model/kernel"
)

// GetDeliveryBoardQueryHandler retrieves driver availability from the
// database. The availability text is derived from the same cooldown the
// dispatcher enforces, so the board and the assignment logic never
// disagree.
type GetDeliveryBoardQueryHandler struct {
	db       *gorm.DB
	cooldown time.Duration
	now      func() time.Time
}

// NewGetDeliveryBoardQueryHandler creates a handler for delivery board
// queries with the dispatch cooldown window.
func NewGetDeliveryBoardQueryHandler(db *gorm.DB, cooldown time.Duration) GetDeliveryBoardQueryHandler {
	return GetDeliveryBoardQueryHandler{
		db:       db,
		cooldown: cooldown,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock returns a copy of the handler that reads time from now. Used
// in tests.
func (h GetDeliveryBoardQueryHandler) WithClock(now func() time.Time) GetDeliveryBoardQueryHandler {
	h.now = now
	return h
}

// Handle executes the query. Returns all drivers sorted by name with their
// availability text.
func (h GetDeliveryBoardQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryBoardQuery,
) ([]GetDeliveryBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.now()
	drivers := make([]GetDeliveryBoardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			p.first_name || ' ' || p.last_name,
			d.assigned_postal_code,
			d.is_available,
			d.last_delivery_time
		FROM drivers d
		JOIN persons p ON p.id = d.person_id
		ORDER BY p.first_name, p.last_name, d.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawID    uuid.UUID
			response GetDeliveryBoardQueryResponse
			last     *time.Time
		)

		err = rows.Scan(
			&rawID,
			&response.Name,
			&response.PostalCode,
			&response.IsAvailable,
			&last,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}

		response.ID = id
		response.LastDeliveryTime = last
		response.Availability = h.availabilityText(response.IsAvailable, last, now)
		drivers = append(drivers, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

// availabilityText mirrors the dispatch eligibility rule: a driver can
// deliver when available and the cooldown since the last delivery has
// fully elapsed. The boundary is inclusive.
func (h GetDeliveryBoardQueryHandler) availabilityText(isAvailable bool, last *time.Time, now time.Time) string {
	canDeliver := isAvailable && (last == nil || now.Sub(*last) >= h.cooldown)
	if canDeliver {
		return "Available"
	}

	minutesLeft := int(h.cooldown.Minutes())
	if last != nil {
		minutesLeft = int(h.cooldown.Minutes()) - int(now.Sub(*last).Minutes())
	}
	return fmt.Sprintf("Unavailable for %d more minutes", minutesLeft)
}
