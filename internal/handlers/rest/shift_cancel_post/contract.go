//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shift_cancel_post_test
package shift_cancel_post

import (
	"context"

	"ridermatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CancelShift(ctx context.Context, shiftID int64) error
}
