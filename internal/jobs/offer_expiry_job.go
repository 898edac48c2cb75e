package jobs

import (
	"context"
	"log/slog"
	"time"

	"carrybee/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// offerExpirySchedule runs the sweep at the top of every hour, so offers
// expiring mid-day do not linger until midnight.
const offerExpirySchedule = "0 0 * * * *"

// OfferExpiryJob periodically sweeps expired daily offers out of the
// active set.
type OfferExpiryJob struct {
	handler commands.ExpireOffersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOfferExpiryJob creates the scheduled offer expiry sweep.
func NewOfferExpiryJob(handler commands.ExpireOffersCommandHandler, logger *slog.Logger) *OfferExpiryJob {
	return &OfferExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "offer_expiry_job"),
	}
}

// Start begins the hourly sweep.
func (j *OfferExpiryJob) Start() error {
	_, err := j.cron.AddFunc(offerExpirySchedule, j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer expiry job started (running hourly)")
	return nil
}

func (j *OfferExpiryJob) runOnce() {
	ctx := context.Background()

	cmd, err := commands.NewExpireOffersCommand(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Offer expiry job could not build command", "error", err)
		return
	}

	deactivated, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Offer expiry job failed", "error", err)
		return
	}

	if deactivated > 0 {
		j.logger.InfoContext(ctx, "Deactivated expired offers", "count", deactivated)
	}
}

// Stop stops the offer expiry job.
func (j *OfferExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Offer expiry job stopped")
}
