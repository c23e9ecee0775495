// Package customerrepo provides data transfer objects and the GORM
// repository for customer persistence.
package customerrepo

import (
	"github.com/google/uuid"

	"pizzeria/internal/adapters/out/postgres/personrepo"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for customer aggregates.
// The loyalty counter lives on this row; identity lives on the joined
// person row.
type CustomerDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	PersonID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	TotalPizzasOrdered int

	Person personrepo.PersonDTO `gorm:"foreignKey:PersonID;references:ID"`
}

// TableName specifies the database table name for customer aggregates.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:                 c.ID().Bytes(),
		PersonID:           c.Person().ID().Bytes(),
		TotalPizzasOrdered: c.TotalPizzasOrdered(),
		Person:             personrepo.FromDomain(c.Person()),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pers, err := personrepo.ToDomain(dto.Person)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, pers, dto.TotalPizzasOrdered)
}
