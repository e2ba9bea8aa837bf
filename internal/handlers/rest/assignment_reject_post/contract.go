//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_reject_post_test
package assignment_reject_post

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
	Reject(ctx context.Context, assignmentID, riderID int64) error
}

// Matcher дергается после отказа: смена вернулась в open и может уйти
// следующему кандидату немедленно.
type Matcher interface {
	RunBatch(ctx context.Context) (int64, error)
}
