//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shift_get_test
package shift_get

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
	GetShift(ctx context.Context, id int64) (*entities.Shift, error)
}
