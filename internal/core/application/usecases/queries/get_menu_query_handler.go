package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
)

// GetMenuQueryHandler retrieves the catalog read model. Pizza rows are
// joined with their ingredients and rebuilt as domain entities so the
// selling price and dietary flags come from the one pricing rule in the
// menu package instead of a second copy in SQL.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for catalog retrieval queries.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query and returns the catalog sections sorted by name.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	pizzas, err := h.loadPizzas(ctx)
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	drinks, err := h.loadDrinks(ctx)
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	desserts, err := h.loadDesserts(ctx)
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	return GetMenuQueryResponse{
		Pizzas:   pizzas,
		Drinks:   drinks,
		Desserts: desserts,
	}, nil
}

// pizzaRow is one pizza-ingredient pair from the join; a pizza with N
// ingredients produces N consecutive rows.
type pizzaRow struct {
	pizzaID     uuid.UUID
	name        string
	description string
	ingredient  *menu.Ingredient
}

func (h GetMenuQueryHandler) loadPizzas(ctx context.Context) ([]MenuPizzaResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.description,
			i.id,
			i.name,
			i.cost_per_unit,
			i.category
		FROM pizzas p
		JOIN pizza_ingredients pi ON pi.pizza_id = p.id
		JOIN ingredients i ON i.id = pi.ingredient_id
		ORDER BY p.name, p.id, i.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]pizzaRow)
	orderSeen := make([]uuid.UUID, 0)

	for rows.Next() {
		var (
			row            pizzaRow
			ingredientID   uuid.UUID
			ingredientName string
			costPerUnit    int64
			category       string
		)

		err = rows.Scan(
			&row.pizzaID,
			&row.name,
			&row.description,
			&ingredientID,
			&ingredientName,
			&costPerUnit,
			&category,
		)
		if err != nil {
			return nil, err
		}

		ingredient, ingErr := buildIngredient(ingredientID, ingredientName, costPerUnit, category)
		if ingErr != nil {
			return nil, ingErr
		}
		row.ingredient = ingredient

		if _, ok := grouped[row.pizzaID]; !ok {
			orderSeen = append(orderSeen, row.pizzaID)
		}
		grouped[row.pizzaID] = append(grouped[row.pizzaID], row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	responses := make([]MenuPizzaResponse, 0, len(orderSeen))
	for _, pizzaID := range orderSeen {
		group := grouped[pizzaID]

		id, idErr := kernel.UUIDFromBytes(pizzaID[:])
		if idErr != nil {
			return nil, idErr
		}

		ingredients := make([]*menu.Ingredient, 0, len(group))
		names := make([]string, 0, len(group))
		for _, row := range group {
			ingredients = append(ingredients, row.ingredient)
			names = append(names, row.ingredient.Name())
		}

		pizza, pizzaErr := menu.NewPizza(id, group[0].name, group[0].description, ingredients)
		if pizzaErr != nil {
			return nil, pizzaErr
		}

		responses = append(responses, MenuPizzaResponse{
			ID:           id,
			Name:         pizza.Name(),
			Description:  pizza.Description(),
			Price:        pizza.Price(),
			IsVegetarian: pizza.IsVegetarian(),
			IsVegan:      pizza.IsVegan(),
			Ingredients:  names,
		})
	}

	return responses, nil
}

func (h GetMenuQueryHandler) loadDrinks(ctx context.Context) ([]MenuDrinkResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price
		FROM drinks
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drinks := make([]MenuDrinkResponse, 0)
	for rows.Next() {
		var (
			rawID uuid.UUID
			name  string
			price int64
		)
		if err = rows.Scan(&rawID, &name, &price); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}

		drinks = append(drinks, MenuDrinkResponse{
			ID:    id,
			Name:  name,
			Price: kernel.MoneyFromCents(price),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drinks, nil
}

func (h GetMenuQueryHandler) loadDesserts(ctx context.Context) ([]MenuDessertResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price
		FROM desserts
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	desserts := make([]MenuDessertResponse, 0)
	for rows.Next() {
		var (
			rawID uuid.UUID
			name  string
			price int64
		)
		if err = rows.Scan(&rawID, &name, &price); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}

		desserts = append(desserts, MenuDessertResponse{
			ID:    id,
			Name:  name,
			Price: kernel.MoneyFromCents(price),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return desserts, nil
}

func buildIngredient(rawID uuid.UUID, name string, costPerUnit int64, category string) (*menu.Ingredient, error) {
	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return nil, err
	}

	cat, err := menu.CategoryFromString(category)
	if err != nil {
		return nil, err
	}

	return menu.NewIngredient(id, name, kernel.MoneyFromCents(costPerUnit), cat)
}
