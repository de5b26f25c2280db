// internal/app/poller.go
package app

import (
	"context"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// Notifier delivers a message to the chat. The poller never acts on its error.
type Notifier interface {
	Deliver(text string) error
}

// Scheduler blocks between poll cycles.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// Poller runs the poll cycle: fetch, validate, format, notify, sleep.
// It is single-goroutine; none of its state is guarded.
type Poller struct {
	client    homework.StatusClient
	notifier  Notifier
	scheduler Scheduler
	logger    *logrus.Entry

	timestamp    int64  // from_date sent on every poll
	lastNotified string // last text handed to the notifier
}

func NewPoller(
	client homework.StatusClient,
	notifier Notifier,
	scheduler Scheduler,
	logger *logrus.Entry,
	startedAt time.Time,
) *Poller {
	return &Poller{
		client:    client,
		notifier:  notifier,
		scheduler: scheduler,
		logger:    logger,
		timestamp: startedAt.Unix(),
	}
}

// Run polls until ctx is cancelled. Any failure inside a cycle is logged and
// the loop carries on after the usual interval.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.WithField("from_date", p.timestamp).Info("Poll loop started")
	for {
		_ = p.RunCycle(ctx)

		if err := p.scheduler.Wait(ctx); err != nil {
			p.logger.Info("Poll loop stopped")
			return err
		}
	}
}

// RunCycle performs a single cycle without the trailing sleep and returns the
// failure that ended it early, if any.
func (p *Poller) RunCycle(ctx context.Context) error {
	payload, err := p.client.HomeworkStatuses(ctx, p.timestamp)
	if err != nil {
		p.logger.WithError(err).
			WithField("error_kind", homework.KindOf(err)).
			Warn("Poll failed, retrying after the interval")
		return err
	}

	message, err := p.render(payload)
	if err != nil {
		p.notify(homework.FormatFailure(err))
		p.logger.WithError(err).
			WithField("error_kind", homework.KindOf(err)).
			Error("Poll cycle failed")
		return err
	}

	// from_date is not advanced; every poll covers the window since start.
	p.notify(message)
	return nil
}

// LastNotified returns the most recent message handed to the notifier.
func (p *Poller) LastNotified() string {
	return p.lastNotified
}

func (p *Poller) render(payload any) (string, error) {
	hw, err := homework.ExtractLatest(payload)
	if err != nil {
		return "", err
	}
	name, _ := hw.Name()
	status, _ := hw.Status()
	p.logger.WithFields(logrus.Fields{"homework": name, "status": status}).Info("Homework status update received")

	return homework.FormatStatus(hw)
}

// notify delivers message unless it equals the last one delivered.
func (p *Poller) notify(message string) {
	if message == p.lastNotified {
		p.logger.Debug("Message unchanged, skipping notification")
		return
	}
	_ = p.notifier.Deliver(message)
	p.lastNotified = message
}
