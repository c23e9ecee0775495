// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - DiscountPolicy: stacks loyalty, birthday and discount-code grants
//     against a priced cart.
//   - DriverProvisioner: creates an emergency driver for a postal code
//     when no existing driver is eligible.
//
// Domain services hold logic that spans aggregates and does not naturally
// belong to a single root.
package services
