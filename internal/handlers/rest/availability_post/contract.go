//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=availability_post_test
package availability_post

import (
	"context"

	"ridermatch/internal/entities"
	"ridermatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AddAvailability(ctx context.Context, window entities.AvailabilityWindow) (int64, error)
}

// Matcher дергается после успешного добавления окна: новое окно могло
// открыть кандидата для незакрытых смен.
type Matcher interface {
	RunBatch(ctx context.Context) (int64, error)
}
