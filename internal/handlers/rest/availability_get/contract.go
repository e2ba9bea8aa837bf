//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=availability_get_test
package availability_get

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
	GetAvailability(ctx context.Context, riderID int64) ([]entities.AvailabilityWindow, error)
}
