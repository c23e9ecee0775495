package services

import (
	"fmt"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/person"
)

// loyaltyPercent is deducted from the subtotal when the customer's pizza
// counter has reached the loyalty threshold.
const loyaltyPercent = 10

// GrantKind identifies which discount rule produced a grant.
type GrantKind int

const (
	// GrantLoyalty is the 10% loyalty discount.
	GrantLoyalty GrantKind = iota + 1

	// GrantBirthday is the free-cheapest-pizza-and-drink birthday discount.
	GrantBirthday

	// GrantDiscountCode is a redeemed fixed-value code.
	GrantDiscountCode
)

// Grant is one outcome of the discount policy. Grants are ordered the way
// the rules ran: loyalty, then birthday, then code. A grant may carry a
// zero amount with an explanatory note, and Applied is false when the rule
// fired but was rejected (unknown, used or expired code).
type Grant struct {
	Kind    GrantKind
	Amount  kernel.Money
	Note    string
	Applied bool
}

// DiscountPolicy evaluates the stacked discount rules against a priced
// cart. The policy is pure: it reads the aggregates and produces grants,
// leaving counter mutation and code redemption to the caller's
// transaction.
type DiscountPolicy struct{}

// NewDiscountPolicy creates a new DiscountPolicy instance.
func NewDiscountPolicy() DiscountPolicy {
	return DiscountPolicy{}
}

// Evaluate runs the three rules in their fixed order and returns the
// resulting grants. All rules are additive and evaluated unconditionally.
//
// Rules:
//  1. Loyalty: customer at the loyalty threshold gets 10% of the subtotal.
//  2. Birthday: the person's birthday grants the cheapest pizza unit plus
//     the cheapest drink unit for free; a birthday with no qualifying item
//     yields a zero-amount grant with an invitation note.
//  3. Code: a known, unused, unexpired code grants its fixed value, capped
//     so the running discount never exceeds the subtotal. Anything else is
//     a rejected grant, never an error.
//
// code is the looked-up aggregate (nil when codeInput did not match) and
// codeInput the raw string the customer typed. The caller redeems the code
// when its grant comes back applied.
func (p DiscountPolicy) Evaluate(
	items []*order.Item,
	subtotal kernel.Money,
	cust *customer.Customer,
	pers *person.Person,
	code *discount.Code,
	codeInput string,
	now time.Time,
) ([]Grant, error) {
	if err := cust.Validate(); err != nil {
		return nil, err
	}
	if err := pers.Validate(); err != nil {
		return nil, err
	}

	var grants []Grant
	var running kernel.Money

	if grant, ok := p.loyaltyGrant(subtotal, cust); ok {
		grants = append(grants, grant)
		running = running.Add(grant.Amount)
	}

	if grant, ok := p.birthdayGrant(items, pers, now); ok {
		grants = append(grants, grant)
		running = running.Add(grant.Amount)
	}

	if codeInput != "" {
		grant := p.codeGrant(subtotal, running, code, codeInput, now)
		grants = append(grants, grant)
	}

	return grants, nil
}

// TotalDiscount sums the applied grant amounts, capped at the subtotal.
func (p DiscountPolicy) TotalDiscount(grants []Grant, subtotal kernel.Money) kernel.Money {
	var total kernel.Money
	for _, grant := range grants {
		if grant.Applied {
			total = total.Add(grant.Amount)
		}
	}
	return total.Min(subtotal)
}

func (p DiscountPolicy) loyaltyGrant(subtotal kernel.Money, cust *customer.Customer) (Grant, bool) {
	if !cust.IsLoyal() {
		return Grant{}, false
	}

	amount := subtotal.Percent(loyaltyPercent)
	return Grant{
		Kind:   GrantLoyalty,
		Amount: amount,
		Note: fmt.Sprintf("Loyalty discount: %s (10%% off for %d pizzas ordered!)",
			amount.String(), cust.TotalPizzasOrdered()),
		Applied: true,
	}, true
}

func (p DiscountPolicy) birthdayGrant(items []*order.Item, pers *person.Person, now time.Time) (Grant, bool) {
	if !pers.IsBirthday(now) {
		return Grant{}, false
	}

	var amount kernel.Money
	var parts []string

	if cheapestPizza, ok := cheapestUnitPrice(items, order.ItemKindPizza); ok {
		amount = amount.Add(cheapestPizza)
		parts = append(parts, fmt.Sprintf("Free cheapest pizza: %s", cheapestPizza.String()))
	}
	if cheapestDrink, ok := cheapestUnitPrice(items, order.ItemKindDrink); ok {
		amount = amount.Add(cheapestDrink)
		parts = append(parts, fmt.Sprintf("Free drink: %s", cheapestDrink.String()))
	}

	note := fmt.Sprintf("Happy Birthday %s! Order a pizza to get your birthday discount!", pers.FirstName())
	if len(parts) > 0 {
		note = fmt.Sprintf("Happy Birthday %s! %s", pers.FirstName(), strings.Join(parts, ", "))
	}

	return Grant{
		Kind:    GrantBirthday,
		Amount:  amount,
		Note:    note,
		Applied: true,
	}, true
}

func (p DiscountPolicy) codeGrant(
	subtotal, running kernel.Money,
	code *discount.Code,
	codeInput string,
	now time.Time,
) Grant {
	if code == nil || !code.IsValidAt(now) {
		return Grant{
			Kind:    GrantDiscountCode,
			Amount:  kernel.Money(0),
			Note:    fmt.Sprintf("Invalid or expired discount code: %s", codeInput),
			Applied: false,
		}
	}

	// cap so the running discount never exceeds the subtotal
	amount := code.Value()
	if headroom := subtotal.Sub(running); amount > headroom {
		amount = headroom
	}
	if amount.IsNegative() {
		amount = kernel.Money(0)
	}

	return Grant{
		Kind:    GrantDiscountCode,
		Amount:  amount,
		Note:    fmt.Sprintf("Discount code %q: %s off", code.Name(), amount.String()),
		Applied: true,
	}
}

func cheapestUnitPrice(items []*order.Item, kind order.ItemKind) (kernel.Money, bool) {
	var cheapest kernel.Money
	found := false
	for _, item := range items {
		if item.Ref().Kind() != kind {
			continue
		}
		if !found || item.UnitPrice() < cheapest {
			cheapest = item.UnitPrice()
			found = true
		}
	}
	return cheapest, found
}
