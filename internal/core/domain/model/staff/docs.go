// Package staff contains the Driver aggregate and its availability state
// machine. A driver serves one postal area and alternates between available
// and delivering; after starting or finishing a delivery a 30-minute
// cooldown must pass before the driver may take new work.
package staff
