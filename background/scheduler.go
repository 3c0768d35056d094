package background

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Bangladesh does not observe daylight saving time
var dhaka = time.FixedZone("Asia/Dhaka", 6*60*60)

// nextMidnight returns the first midnight in Dhaka after now
func nextMidnight(now time.Time) time.Time {
	local := now.In(dhaka)
	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, dhaka)
}

// Schedule enqueues the donor availability reconciliation every night until
// ctx is done. The job is idempotent so overlapping schedulers of several
// workers are harmless.
func (m *BackgroundManager) Schedule(ctx context.Context) {
	dispatcher := NewTaskDispatcher(m.taskServer)

	for {
		next := m.nextRun(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if err := dispatcher.RestoreDonorAvailability(); err != nil {
			log.WithField("prefix", "background").WithError(err).Error("fail to enqueue " + TaskRestoreDonorAvailability)
		}
	}
}
