// Package driverrepo provides data transfer objects and the GORM
// repository for driver persistence.
package driverrepo

import (
	"time"

	"github.com/google/uuid"

	"pizzeria/internal/adapters/out/postgres/personrepo"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/staff"
)

// DriverDTO represents the database structure for driver aggregates.
// Indexed by postal code and availability because eligibility lookups
// filter on both.
type DriverDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	PersonID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	IsAvailable        bool      `gorm:"index:idx_drivers_dispatch"`
	LastDeliveryTime   *time.Time
	AssignedPostalCode string `gorm:"index:idx_drivers_dispatch"`
	CreatedAt          time.Time

	Person personrepo.PersonDTO `gorm:"foreignKey:PersonID;references:ID"`
}

// TableName specifies the database table name for driver aggregates.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *staff.Driver) DriverDTO {
	return DriverDTO{
		ID:                 d.ID().Bytes(),
		PersonID:           d.Person().ID().Bytes(),
		IsAvailable:        d.IsAvailable(),
		LastDeliveryTime:   d.LastDeliveryTime(),
		AssignedPostalCode: d.AssignedPostalCode(),
		CreatedAt:          d.CreatedAt(),
		Person:             personrepo.FromDomain(d.Person()),
	}
}

func toDomain(dto DriverDTO) (*staff.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pers, err := personrepo.ToDomain(dto.Person)
	if err != nil {
		return nil, err
	}

	return staff.RestoreDriver(
		id, pers,
		dto.IsAvailable, dto.LastDeliveryTime,
		dto.AssignedPostalCode, dto.CreatedAt,
	)
}
