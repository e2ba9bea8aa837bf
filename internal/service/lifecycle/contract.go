//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"
	"time"

	"ridermatch/internal/entities"
	"ridermatch/pkg/logger"
)

type Repository interface {
	// ConfirmByRider — compare-and-set: выставляет confirmed_by_rider только
	// если строка назначения еще существует и принадлежит райдеру. Если
	// назначение уже удалено (таймаут/отказ), возвращает ErrAssignmentNotFound.
	ConfirmByRider(ctx context.Context, assignmentID, riderID int64) (*entities.Assignment, error)
	ConfirmByPizzeria(ctx context.Context, assignmentID int64) (*entities.Assignment, error)

	// DeleteForRider удаляет назначение райдера, возвращая id его смены.
	DeleteForRider(ctx context.Context, assignmentID, riderID int64) (int64, error)

	// DeleteByShift удаляет назначение смены, если оно есть.
	DeleteByShift(ctx context.Context, shiftID int64) (riderID int64, found bool, err error)

	RecordRejection(ctx context.Context, shiftID, riderID int64, rejectedAt time.Time) error

	// ReclaimExpired одним атомарным запросом удаляет неподтвержденные
	// назначения старше cutoff и возвращает их смены в open.
	ReclaimExpired(ctx context.Context, cutoff time.Time) (int64, error)

	// CompleteElapsed переводит подтвержденные смены с прошедшим концом
	// в completed.
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)

	GetShift(ctx context.Context, shiftID int64) (*entities.Shift, error)
	SetShiftStatusFrom(ctx context.Context, shiftID int64, from, to entities.ShiftStatusType) error

	// CancelShift — административный перевод в cancelled из любого
	// нетерминального статуса.
	CancelShift(ctx context.Context, shiftID int64) error
}

type DeadlineFactory interface {
	// ExpiryCutoff возвращает момент, раньше которого неподтвержденное
	// назначение считается просроченным.
	ExpiryCutoff(now time.Time) time.Time
}

type Notifier interface {
	ShiftCancelled(ctx context.Context, riderID int64, shift entities.Shift) error
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type lifecycleLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
