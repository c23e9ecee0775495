// Package orderrepo provides data transfer objects and the GORM repository
// for order persistence. The order row owns its item rows; items are
// written and loaded with the aggregate.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for order aggregates.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID   *uuid.UUID `gorm:"type:uuid;index"`
	Status     string     `gorm:"index"`
	Discount   int64
	FinalTotal int64
	Finalized  bool
	CreatedAt  time.Time `gorm:"index"`

	Items []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order aggregates.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for order lines. Kind plus
// ProductID form the tagged product reference; name and unit price are the
// checkout snapshots.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Kind      string
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	Quantity  int
	UnitPrice int64
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   o.ID().Bytes(),
			Kind:      item.Ref().Kind().String(),
			ProductID: item.Ref().ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Cents(),
		})
	}

	return OrderDTO{
		ID:         o.ID().Bytes(),
		CustomerID: o.CustomerID().Bytes(),
		DriverID:   driverID,
		Status:     o.Status().String(),
		Discount:   o.Discount().Cents(),
		FinalTotal: o.FinalTotal().Cents(),
		Finalized:  o.IsFinalized(),
		CreatedAt:  o.CreatedAt(),
		Items:      items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, driverID, status, items,
		kernel.MoneyFromCents(dto.Discount),
		kernel.MoneyFromCents(dto.FinalTotal),
		dto.Finalized,
		dto.CreatedAt,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	kind, err := order.ItemKindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	ref, err := order.RestoreItemRef(kind, productID)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, ref, dto.Name, dto.Quantity, kernel.MoneyFromCents(dto.UnitPrice))
}
