package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"pizzeria/internal/core/application/usecases/commands"
)

// DeliveryStatusJob advances order statuses on a schedule. Runs every
// second so orders leave the kitchen and complete close to their
// configured thresholds.
type DeliveryStatusJob struct {
	handler commands.AdvanceDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryStatusJob creates the status sweep job around its command
// handler.
func NewDeliveryStatusJob(handler commands.AdvanceDeliveriesCommandHandler, logger *slog.Logger) *DeliveryStatusJob {
	return &DeliveryStatusJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_status_job"),
	}
}

// Start begins the status sweep, running every second.
func (j *DeliveryStatusJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery status job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery status job started (running every second)")
	return nil
}

// Stop stops the status sweep.
func (j *DeliveryStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery status job stopped")
}
