// Package person contains the Person entity shared by the customer and staff
// aggregates. A person carries identity and contact details plus the date of
// birth and postal code that the discount and driver-assignment rules read.
package person
