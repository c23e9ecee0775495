package menu

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// Pricing factors for the derived pizza price: 40% profit margin on the
// ingredient cost basis, then 9% tax, rounded to the cent.
const (
	profitMargin = 1.40
	taxRate      = 1.09
)

// Errors for pizza construction and pricing.
var (
	// ErrPizzaNameIsRequired is returned when creating a pizza without a name.
	ErrPizzaNameIsRequired = errs.NewValueIsRequiredError("pizza name")
	// ErrPizzaHasNoIngredients is returned when creating or pricing a pizza
	// with an empty ingredient set. A pizza without ingredients would price
	// at zero, which violates the catalog's price>0 invariant.
	ErrPizzaHasNoIngredients = errors.New("pizza must have at least one ingredient")
	// ErrPizzaIsNotConstructed is returned when using an improperly initialized Pizza.
	ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewPizza constructor")
)

// Pizza is a menu pizza whose selling price is derived, never stored:
// the ingredient costs are summed, the profit margin and tax applied, and
// the result rounded to the cent. Identical ingredient sets always price
// identically.
type Pizza struct {
	id          kernel.UUID
	name        string
	description string
	ingredients []*Ingredient

	guard guard.ConstructorGuard
}

// NewPizza creates a pizza from its ingredient set. At least one ingredient
// is required.
func NewPizza(id kernel.UUID, name, description string, ingredients []*Ingredient) (*Pizza, error) {
	p := &Pizza{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setIngredients(ingredients),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks that the Pizza was built via the constructor.
func (p *Pizza) Validate() error {
	if p == nil {
		return ErrPizzaIsNotConstructed
	}
	return p.guard.Validate(ErrPizzaIsNotConstructed)
}

// ID returns the pizza's unique identifier.
func (p *Pizza) ID() kernel.UUID {
	return p.id
}

// Name returns the pizza's display name.
func (p *Pizza) Name() string {
	return p.name
}

// Description returns the pizza's menu description, possibly empty.
func (p *Pizza) Description() string {
	return p.description
}

// Ingredients returns a copy of the pizza's ingredient set.
func (p *Pizza) Ingredients() []*Ingredient {
	out := make([]*Ingredient, len(p.ingredients))
	copy(out, p.ingredients)
	return out
}

// BaseCost sums the per-unit cost of all ingredients.
func (p *Pizza) BaseCost() kernel.Money {
	var total kernel.Money
	for _, ingredient := range p.ingredients {
		total = total.Add(ingredient.CostPerUnit())
	}
	return total
}

// Price derives the selling price: round(base cost × 1.40 × 1.09, cents).
// Deterministic for identical ingredient sets; pure, no side effects.
func (p *Pizza) Price() kernel.Money {
	return kernel.MoneyFromFloat(p.BaseCost().Float() * profitMargin * taxRate)
}

// IsVegetarian reports whether every ingredient is vegetarian friendly.
func (p *Pizza) IsVegetarian() bool {
	for _, ingredient := range p.ingredients {
		if !ingredient.IsVegetarianFriendly() {
			return false
		}
	}
	return true
}

// IsVegan reports whether every ingredient is vegan friendly.
func (p *Pizza) IsVegan() bool {
	for _, ingredient := range p.ingredients {
		if !ingredient.IsVeganFriendly() {
			return false
		}
	}
	return true
}

func (p *Pizza) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pizza) setName(name string) error {
	if name == "" {
		return ErrPizzaNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Pizza) setIngredients(ingredients []*Ingredient) error {
	if len(ingredients) == 0 {
		return ErrPizzaHasNoIngredients
	}

	for _, ingredient := range ingredients {
		if err := ingredient.Validate(); err != nil {
			return err
		}
	}

	p.ingredients = make([]*Ingredient, len(ingredients))
	copy(p.ingredients, ingredients)
	return nil
}
