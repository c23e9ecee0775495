// Package order contains the Order aggregate root and its parts: line
// items with price snapshots, the item reference variant and the delivery
// status state machine.
//
// An order is priced at checkout time. Each line item snapshots the unit
// price that applied when the order was placed, so later menu changes never
// alter a placed order. Discounts and the final total are written once
// during finalization and are immutable afterwards.
package order
