// Package kernel contains the shared value objects of the domain model:
// identifiers and money. These types carry no business rules of their own
// beyond their invariants and are safe to use across aggregate boundaries.
package kernel
