//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shift_post_test
package shift_post

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
	CreateShift(ctx context.Context, shiftModify entities.ShiftModify) (*entities.Shift, error)
}

// Matcher дергается после публикации: новая смена сразу пробует найти райдера,
// не дожидаясь периодического тика.
type Matcher interface {
	RunBatch(ctx context.Context) (int64, error)
}
