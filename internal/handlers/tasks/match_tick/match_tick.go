package match_tick

import (
	"context"
	"time"

	"ridermatch/pkg/logger"
)

type Service interface {
	RunBatch(ctx context.Context) (int64, error)
}

// MatchTick — периодический прогон мэтчинга. Страховка на случай, когда
// событийные триггеры (публикация смены, отказ, новое окно) не сработали.
type MatchTick struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewMatchTick(log logger.Logger, service Service, interval time.Duration) *MatchTick {
	return &MatchTick{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (m *MatchTick) TTL() time.Duration {
	return m.interval
}

func (m *MatchTick) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	created, err := m.service.RunBatch(ctxWithTimeout)

	if created > 0 {
		m.log.With(
			logger.NewField("assignments_created", created),
		).Info("match tick")
	}

	return err
}

func (m *MatchTick) Info() string {
	return "match tick"
}
