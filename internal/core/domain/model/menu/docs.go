// Package menu contains the catalog entities: ingredients, pizzas, drinks,
// and desserts. Pizza prices are never stored; they are derived from the
// ingredient cost basis with a 40% margin and 9% tax, rounded to the cent.
// Drink and dessert prices are stored constants. The core only ever reads
// the catalog.
package menu
