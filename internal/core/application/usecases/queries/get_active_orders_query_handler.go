package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pizzeria/internal/core/domain/model/kernel"
)

// GetActiveOrdersQueryHandler retrieves undelivered orders from the
// database. Uses direct SQL for optimal read performance.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns active orders oldest first with the
// customer and, when assigned, driver names resolved.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			cp.first_name || ' ' || cp.last_name,
			COALESCE(dp.first_name || ' ' || dp.last_name, ''),
			o.status,
			(SELECT COALESCE(SUM(oi.quantity), 0) FROM order_items oi WHERE oi.order_id = o.id),
			o.discount,
			o.final_total,
			o.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN persons cp ON cp.id = c.person_id
		LEFT JOIN drivers d ON d.id = o.driver_id
		LEFT JOIN persons dp ON dp.id = d.person_id
		WHERE o.status NOT IN ('Delivered', 'Cancelled')
		ORDER BY o.created_at, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawID      uuid.UUID
			response   GetActiveOrdersQueryResponse
			driverName sql.NullString
			discount   int64
			finalTotal int64
			createdAt  time.Time
		)

		err = rows.Scan(
			&rawID,
			&response.CustomerName,
			&driverName,
			&response.Status,
			&response.ItemCount,
			&discount,
			&finalTotal,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}

		response.ID = id
		response.DriverName = driverName.String
		response.Discount = kernel.MoneyFromCents(discount)
		response.FinalTotal = kernel.MoneyFromCents(finalTotal)
		response.CreatedAt = createdAt
		orders = append(orders, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
