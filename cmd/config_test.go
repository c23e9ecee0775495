package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// The sweep defaults are deliberately short: an order is out for delivery
// 30 seconds after creation and delivered after 120. Production timing
// comes from STATUS_OUT_FOR_DELIVERY_AFTER / STATUS_DELIVERED_AFTER.
func TestDefaultSweepThresholds(t *testing.T) {
	assert.Equal(t, 30*time.Second, DefaultStatusOutForDeliveryAfter)
	assert.Equal(t, 120*time.Second, DefaultStatusDeliveredAfter)
}
