package alert

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Start launches the recurring schedule: first cycle fires immediately, then
// one fires every interval, measured from the previous fire start. Each cycle
// runs in its own goroutine, so a slow run never delays the next fire and
// never blocks command handling. Cancelling ctx stops the schedule.
func (r *Runner) Start(ctx context.Context, chatID int64, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if ctx.Err() != nil {
				return
			}
			go r.Run(ctx, chatID)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	log.Infof("alert scheduler started, interval %s", interval)
}
