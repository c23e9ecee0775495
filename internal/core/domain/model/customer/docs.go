// Package customer contains the Customer aggregate. A customer wraps a
// person and owns the lifetime pizza counter that drives the loyalty
// discount: once the counter reaches ten, the next order gets 10% off and
// the counter resets to zero.
package customer
