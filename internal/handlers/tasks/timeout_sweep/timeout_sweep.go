package timeout_sweep

import (
	"context"
	"time"

	"ridermatch/pkg/logger"
)

type Service interface {
	SweepTimeouts(ctx context.Context) (int64, error)
}

type Matcher interface {
	RunBatch(ctx context.Context) (int64, error)
}

// TimeoutSweep снимает просроченные неподтвержденные назначения и сразу
// перепрогоняет мэтчинг: освобожденные смены могут уйти следующим кандидатам.
type TimeoutSweep struct {
	log      logger.Logger
	service  Service
	matcher  Matcher
	interval time.Duration
}

func NewTimeoutSweep(log logger.Logger, service Service, matcher Matcher, interval time.Duration) *TimeoutSweep {
	return &TimeoutSweep{
		log:      log,
		service:  service,
		matcher:  matcher,
		interval: interval,
	}
}

func (t *TimeoutSweep) TTL() time.Duration {
	return t.interval
}

func (t *TimeoutSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	reclaimed, err := t.service.SweepTimeouts(ctxWithTimeout)
	if err != nil {
		return err
	}

	if reclaimed > 0 {
		t.log.With(
			logger.NewField("reclaimed_shifts", reclaimed),
		).Info("timeout sweep")

		if _, err := t.matcher.RunBatch(ctxWithTimeout); err != nil {
			t.log.With(
				logger.NewField("error", err),
			).Warn("match run after timeout sweep failed")
		}
	}

	return nil
}

func (t *TimeoutSweep) Info() string {
	return "timeout sweep"
}
