// Package personrepo provides the shared person data transfer object and
// its domain mapping. A person row backs both customer and driver
// aggregates, so the mapping lives in one place.
package personrepo

import (
	"time"

	"github.com/google/uuid"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/person"
)

// PersonDTO represents the database structure for person records.
type PersonDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName  string
	LastName   string
	Email      string `gorm:"uniqueIndex"`
	Phone      string
	BirthDate  time.Time
	Address    string
	PostalCode string `gorm:"index"`
	Role       string
	CreatedAt  time.Time
}

// TableName specifies the database table name for person records.
func (PersonDTO) TableName() string {
	return "persons"
}

// FromDomain converts a person entity to its database representation.
func FromDomain(p *person.Person) PersonDTO {
	return PersonDTO{
		ID:         p.ID().Bytes(),
		FirstName:  p.FirstName(),
		LastName:   p.LastName(),
		Email:      p.Email(),
		Phone:      p.Phone(),
		BirthDate:  p.BirthDate(),
		Address:    p.Address(),
		PostalCode: p.PostalCode(),
		Role:       p.Role().String(),
		CreatedAt:  p.CreatedAt(),
	}
}

// ToDomain converts a database DTO back to a person entity.
func ToDomain(dto PersonDTO) (*person.Person, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := person.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return person.RestorePerson(
		id,
		dto.FirstName, dto.LastName, dto.Email, dto.Phone,
		dto.BirthDate,
		dto.Address, dto.PostalCode,
		role,
		dto.CreatedAt,
	)
}
