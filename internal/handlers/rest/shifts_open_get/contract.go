//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shifts_open_get_test
package shifts_open_get

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
	GetOpenShifts(ctx context.Context) ([]entities.Shift, error)
}
