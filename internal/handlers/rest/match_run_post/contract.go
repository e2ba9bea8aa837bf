//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=match_run_post_test
package match_run_post

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
	RunBatch(ctx context.Context) (int64, error)
}
