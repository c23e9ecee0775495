// Package discountrepo provides the data transfer object and GORM
// repository for discount codes.
package discountrepo

import (
	"time"

	"github.com/google/uuid"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
)

// CodeDTO represents the database structure for discount codes. Value is
// stored in euro cents.
type CodeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex"`
	Value     int64
	ExpiresAt time.Time
	IsUsed    bool
}

// TableName specifies the database table name for discount codes.
func (CodeDTO) TableName() string {
	return "discount_codes"
}

// FromDomain converts a discount code to its database representation.
// Exported for seeding.
func FromDomain(code *discount.Code) CodeDTO {
	return CodeDTO{
		ID:        code.ID().Bytes(),
		Name:      code.Name(),
		Value:     code.Value().Cents(),
		ExpiresAt: code.ExpiresAt(),
		IsUsed:    code.IsUsed(),
	}
}

func toDomain(dto CodeDTO) (*discount.Code, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return discount.RestoreCode(id, dto.Name, kernel.MoneyFromCents(dto.Value), dto.ExpiresAt, dto.IsUsed)
}
