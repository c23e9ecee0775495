// Package menurepo provides data transfer objects and the GORM repository
// for the product catalog. The catalog is read-only from the order core's
// point of view; rows are written by seeding.
package menurepo

import (
	"github.com/google/uuid"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
)

// PizzaDTO represents the database structure for catalog pizzas. The
// selling price is never stored; it is derived from the ingredient rows.
type PizzaDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex"`
	Description string

	Ingredients []IngredientDTO `gorm:"many2many:pizza_ingredients;joinForeignKey:PizzaID;joinReferences:IngredientID"`
}

// TableName specifies the database table name for catalog pizzas.
func (PizzaDTO) TableName() string {
	return "pizzas"
}

// IngredientDTO represents the database structure for pizza ingredients.
type IngredientDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex"`
	CostPerUnit int64
	Category    string
}

// TableName specifies the database table name for ingredients.
func (IngredientDTO) TableName() string {
	return "ingredients"
}

// DrinkDTO represents the database structure for catalog drinks.
type DrinkDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"uniqueIndex"`
	Price int64
}

// TableName specifies the database table name for catalog drinks.
func (DrinkDTO) TableName() string {
	return "drinks"
}

// DessertDTO represents the database structure for catalog desserts.
type DessertDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"uniqueIndex"`
	Price int64
}

// TableName specifies the database table name for catalog desserts.
func (DessertDTO) TableName() string {
	return "desserts"
}

// PizzaFromDomain converts a pizza entity to its database representation.
// Exported for catalog seeding.
func PizzaFromDomain(p *menu.Pizza) PizzaDTO {
	ingredients := make([]IngredientDTO, 0, len(p.Ingredients()))
	for _, ingredient := range p.Ingredients() {
		ingredients = append(ingredients, ingredientFromDomain(ingredient))
	}

	return PizzaDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		Description: p.Description(),
		Ingredients: ingredients,
	}
}

// DrinkFromDomain converts a drink entity to its database representation.
func DrinkFromDomain(d *menu.Drink) DrinkDTO {
	return DrinkDTO{
		ID:    d.ID().Bytes(),
		Name:  d.Name(),
		Price: d.Price().Cents(),
	}
}

// DessertFromDomain converts a dessert entity to its database representation.
func DessertFromDomain(d *menu.Dessert) DessertDTO {
	return DessertDTO{
		ID:    d.ID().Bytes(),
		Name:  d.Name(),
		Price: d.Price().Cents(),
	}
}

func ingredientFromDomain(i *menu.Ingredient) IngredientDTO {
	return IngredientDTO{
		ID:          i.ID().Bytes(),
		Name:        i.Name(),
		CostPerUnit: i.CostPerUnit().Cents(),
		Category:    i.Category().String(),
	}
}

func pizzaToDomain(dto PizzaDTO) (*menu.Pizza, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ingredients := make([]*menu.Ingredient, 0, len(dto.Ingredients))
	for _, ingredientDTO := range dto.Ingredients {
		ingredient, ingErr := ingredientToDomain(ingredientDTO)
		if ingErr != nil {
			return nil, ingErr
		}
		ingredients = append(ingredients, ingredient)
	}

	return menu.NewPizza(id, dto.Name, dto.Description, ingredients)
}

func ingredientToDomain(dto IngredientDTO) (*menu.Ingredient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := menu.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	return menu.NewIngredient(id, dto.Name, kernel.MoneyFromCents(dto.CostPerUnit), category)
}

func drinkToDomain(dto DrinkDTO) (*menu.Drink, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return menu.NewDrink(id, dto.Name, kernel.MoneyFromCents(dto.Price))
}

func dessertToDomain(dto DessertDTO) (*menu.Dessert, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return menu.NewDessert(id, dto.Name, kernel.MoneyFromCents(dto.Price))
}
