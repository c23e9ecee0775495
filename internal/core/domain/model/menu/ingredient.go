package menu

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// Category classifies an ingredient for dietary checks.
type Category int

const (
	// UnknownCategory represents an invalid or undefined category.
	UnknownCategory Category = iota

	// CategoryMeat marks animal-based ingredients.
	CategoryMeat

	// CategoryDairy marks milk-based ingredients.
	CategoryDairy

	// CategoryVegetable marks plant ingredients.
	CategoryVegetable

	// CategoryVegan marks explicitly vegan substitutes.
	CategoryVegan

	// CategoryOther marks ingredients outside the named categories.
	CategoryOther
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory:   "Unknown",
		CategoryMeat:      "Meat",
		CategoryDairy:     "Dairy",
		CategoryVegetable: "Vegetable",
		CategoryVegan:     "Vegan",
		CategoryOther:     "Other",
	}
}

// Validate checks that the Category is one of the named catalog categories.
func (c Category) Validate() error {
	if c == UnknownCategory {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the human-readable name of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// CategoryFromString parses a stored category name back to its Category value.
func CategoryFromString(s string) (Category, error) {
	for c, str := range getCategoryStrings() {
		if c != UnknownCategory && str == s {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"category is invalid", fmt.Errorf("%q is not a valid category", s))
}

// Errors for ingredient construction.
var (
	// ErrIngredientNameIsRequired is returned when creating an ingredient without a name.
	ErrIngredientNameIsRequired = errs.NewValueIsRequiredError("ingredient name")
	// ErrIngredientCostIsInvalid is returned when an ingredient's cost per unit is not positive.
	ErrIngredientCostIsInvalid = errors.New("ingredient cost per unit must be greater than zero")
	// ErrIngredientIsNotConstructed is returned when using an improperly initialized Ingredient.
	ErrIngredientIsNotConstructed = errors.New("Ingredient must be created via NewIngredient constructor")
)

// Ingredient is a pizza component with a per-unit cost. The cost is the
// basis for the derived pizza price; it must be strictly positive.
type Ingredient struct {
	id          kernel.UUID
	name        string
	costPerUnit kernel.Money
	category    Category

	guard guard.ConstructorGuard
}

// NewIngredient creates an ingredient with the given cost basis and category.
func NewIngredient(id kernel.UUID, name string, costPerUnit kernel.Money, category Category) (*Ingredient, error) {
	i := &Ingredient{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setID(id),
		i.setName(name),
		i.setCostPerUnit(costPerUnit),
		i.setCategory(category),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// Validate checks that the Ingredient was built via the constructor.
func (i *Ingredient) Validate() error {
	if i == nil {
		return ErrIngredientIsNotConstructed
	}
	return i.guard.Validate(ErrIngredientIsNotConstructed)
}

// ID returns the ingredient's unique identifier.
func (i *Ingredient) ID() kernel.UUID {
	return i.id
}

// Name returns the ingredient's display name.
func (i *Ingredient) Name() string {
	return i.name
}

// CostPerUnit returns the ingredient's cost basis.
func (i *Ingredient) CostPerUnit() kernel.Money {
	return i.costPerUnit
}

// Category returns the ingredient's dietary category.
func (i *Ingredient) Category() Category {
	return i.category
}

// IsVegetarianFriendly reports whether vegetarians can eat this ingredient.
func (i *Ingredient) IsVegetarianFriendly() bool {
	switch i.category {
	case CategoryVegetable, CategoryDairy, CategoryVegan, CategoryOther:
		return true
	default:
		return false
	}
}

// IsVeganFriendly reports whether vegans can eat this ingredient.
func (i *Ingredient) IsVeganFriendly() bool {
	switch i.category {
	case CategoryVegan, CategoryVegetable, CategoryOther:
		return true
	default:
		return false
	}
}

func (i *Ingredient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Ingredient) setName(name string) error {
	if name == "" {
		return ErrIngredientNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Ingredient) setCostPerUnit(cost kernel.Money) error {
	if !cost.IsPositive() {
		return ErrIngredientCostIsInvalid
	}
	i.costPerUnit = cost
	return nil
}

func (i *Ingredient) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}
