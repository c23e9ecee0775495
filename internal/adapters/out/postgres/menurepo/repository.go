package menurepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/pkg/errs"
)

// GormMenuRepository implements MenuRepository using GORM. The catalog
// is read-only here, so the repository never tracks aggregates.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// GetPizza retrieves a pizza with its ingredients by ID.
func (r *GormMenuRepository) GetPizza(ctx context.Context, id kernel.UUID) (*menu.Pizza, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PizzaDTO
	err := r.db.WithContext(ctx).
		Preload("Ingredients").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pizza", id.String())
		}
		return nil, err
	}

	return pizzaToDomain(dto)
}

// GetDrink retrieves a drink by ID.
func (r *GormMenuRepository) GetDrink(ctx context.Context, id kernel.UUID) (*menu.Drink, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DrinkDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("drink", id.String())
		}
		return nil, err
	}

	return drinkToDomain(dto)
}

// GetDessert retrieves a dessert by ID.
func (r *GormMenuRepository) GetDessert(ctx context.Context, id kernel.UUID) (*menu.Dessert, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DessertDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dessert", id.String())
		}
		return nil, err
	}

	return dessertToDomain(dto)
}

// GetAllPizzas retrieves the full pizza catalog with ingredients.
func (r *GormMenuRepository) GetAllPizzas(ctx context.Context) ([]*menu.Pizza, error) {
	var dtos []PizzaDTO
	err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	pizzas := make([]*menu.Pizza, 0, len(dtos))
	for _, dto := range dtos {
		pizza, convErr := pizzaToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		pizzas = append(pizzas, pizza)
	}
	return pizzas, nil
}

// GetAllDrinks retrieves the full drink catalog.
func (r *GormMenuRepository) GetAllDrinks(ctx context.Context) ([]*menu.Drink, error) {
	var dtos []DrinkDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drinks := make([]*menu.Drink, 0, len(dtos))
	for _, dto := range dtos {
		drink, convErr := drinkToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		drinks = append(drinks, drink)
	}
	return drinks, nil
}

// GetAllDesserts retrieves the full dessert catalog.
func (r *GormMenuRepository) GetAllDesserts(ctx context.Context) ([]*menu.Dessert, error) {
	var dtos []DessertDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	desserts := make([]*menu.Dessert, 0, len(dtos))
	for _, dto := range dtos {
		dessert, convErr := dessertToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		desserts = append(desserts, dessert)
	}
	return desserts, nil
}
