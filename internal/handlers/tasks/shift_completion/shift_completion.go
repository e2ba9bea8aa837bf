package shift_completion

import (
	"context"
	"time"

	"ridermatch/pkg/logger"
)

type Service interface {
	CompleteElapsed(ctx context.Context) (int64, error)
}

type ShiftCompletion struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewShiftCompletion(log logger.Logger, service Service, interval time.Duration) *ShiftCompletion {
	return &ShiftCompletion{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *ShiftCompletion) TTL() time.Duration {
	return s.interval
}

func (s *ShiftCompletion) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	completed, err := s.service.CompleteElapsed(ctxWithTimeout)

	if completed > 0 {
		s.log.With(
			logger.NewField("completed_shifts", completed),
		).Info("shift completion")
	}

	return err
}

func (s *ShiftCompletion) Info() string {
	return "shift completion"
}
