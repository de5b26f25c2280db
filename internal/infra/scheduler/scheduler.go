package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollScheduler paces the poll loop. It has no job table: the loop calls Wait
// between cycles and the schedule decides when the next cycle may begin.
type PollScheduler struct {
	schedule cron.Schedule
	now      func() time.Time
	logger   *logrus.Entry
}

// Every returns a fixed-delay schedule. cron rounds the delay down to whole
// seconds, with a minimum of one second.
func Every(interval time.Duration) cron.Schedule {
	return cron.Every(interval)
}

func NewPollScheduler(schedule cron.Schedule, logger *logrus.Entry) *PollScheduler {
	return &PollScheduler{
		schedule: schedule,
		now:      time.Now,
		logger:   logger,
	}
}

// Next reports when the cycle after now is due.
func (s *PollScheduler) Next() time.Time {
	return s.schedule.Next(s.now())
}

// Wait blocks until the next activation of the schedule or until ctx is done.
func (s *PollScheduler) Wait(ctx context.Context) error {
	now := s.now()
	next := s.schedule.Next(now)
	delay := next.Sub(now)
	s.logger.WithField("next_poll", next.Format(time.RFC3339)).Debugf("Sleeping for %s", delay)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
