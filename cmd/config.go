package cmd

import "time"

// Default sweep thresholds. Orders leave the kitchen 30 seconds after
// creation and complete 120 seconds after creation unless the environment
// overrides the timing.
const (
	DefaultStatusOutForDeliveryAfter = 30 * time.Second
	DefaultStatusDeliveredAfter      = 120 * time.Second
)

// Config carries all runtime settings. Values come from the environment;
// the durations govern the driver cooldown and the delivery status sweep.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DriverCooldown            time.Duration
	StatusOutForDeliveryAfter time.Duration
	StatusDeliveredAfter      time.Duration
}
