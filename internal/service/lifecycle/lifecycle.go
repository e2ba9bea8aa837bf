package lifecycle

import (
	"context"
	"fmt"

	"ridermatch/internal/entities"
	"ridermatch/pkg/logger"
)

// Lifecycle ведет назначение от создания до подтверждения, таймаута или
// отмены. Единственный писатель переходов assigned→open (отказ/таймаут) и
// assigned|confirmed→cancelled; создает назначения только движок мэтчинга.
type Lifecycle struct {
	repository Repository
	deadlines  DeadlineFactory
	notifier   Notifier
	clock      Clock
	txManager  TxManager
	log        lifecycleLogger
}

func New(
	log lifecycleLogger,
	repository Repository,
	deadlines DeadlineFactory,
	notifier Notifier,
	clock Clock,
	txManager TxManager,
) *Lifecycle {
	return &Lifecycle{
		repository: repository,
		deadlines:  deadlines,
		notifier:   notifier,
		clock:      clock,
		txManager:  txManager,
		log:        log.With(logger.NewField("component", "assignment_lifecycle")),
	}
}

// Accept — подтверждение райдером. Если назначение уже снято таймаутом или
// отказом, CAS в репозитории вернет ErrAssignmentNotFound: гонка
// "подтверждение против истечения" разрешается порядком коммитов, проигравший
// получает ошибку, а не молчаливую перезапись.
func (l *Lifecycle) Accept(ctx context.Context, assignmentID, riderID int64) error {
	if assignmentID <= 0 {
		return ErrInvalidAssignmentID
	}
	if riderID <= 0 {
		return ErrInvalidRiderID
	}

	return l.txManager.Do(ctx, func(ctx context.Context) error {
		assignment, err := l.repository.ConfirmByRider(ctx, assignmentID, riderID)
		if err != nil {
			return fmt.Errorf("confirm by rider: %w", err)
		}

		if assignment.FullyConfirmed() {
			err := l.repository.SetShiftStatusFrom(ctx, assignment.ShiftID, entities.ShiftAssigned, entities.ShiftConfirmed)
			if err != nil {
				return fmt.Errorf("transition shift to confirmed: %w", err)
			}
		}
		return nil
	})
}

// ConfirmByPizzeria — вторая половина подтверждения; когда оба флага
// выставлены, смена переходит в confirmed.
func (l *Lifecycle) ConfirmByPizzeria(ctx context.Context, assignmentID int64) error {
	if assignmentID <= 0 {
		return ErrInvalidAssignmentID
	}

	return l.txManager.Do(ctx, func(ctx context.Context) error {
		assignment, err := l.repository.ConfirmByPizzeria(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("confirm by pizzeria: %w", err)
		}

		if assignment.FullyConfirmed() {
			err := l.repository.SetShiftStatusFrom(ctx, assignment.ShiftID, entities.ShiftAssigned, entities.ShiftConfirmed)
			if err != nil {
				return fmt.Errorf("transition shift to confirmed: %w", err)
			}
		}
		return nil
	})
}

// Reject — явный отказ райдера: назначение удаляется, смена возвращается в
// open и снова мэтчится следующим прогоном. Отказ фиксируется для cooldown
// в AvailabilityIndex.
func (l *Lifecycle) Reject(ctx context.Context, assignmentID, riderID int64) error {
	if assignmentID <= 0 {
		return ErrInvalidAssignmentID
	}
	if riderID <= 0 {
		return ErrInvalidRiderID
	}

	return l.txManager.Do(ctx, func(ctx context.Context) error {
		shiftID, err := l.repository.DeleteForRider(ctx, assignmentID, riderID)
		if err != nil {
			return fmt.Errorf("delete assignment: %w", err)
		}

		rejectedAt := l.clock.Now().UTC()
		if err := l.repository.RecordRejection(ctx, shiftID, riderID, rejectedAt); err != nil {
			return fmt.Errorf("record rejection: %w", err)
		}

		err = l.repository.SetShiftStatusFrom(ctx, shiftID, entities.ShiftAssigned, entities.ShiftOpen)
		if err != nil {
			return fmt.Errorf("reopen shift: %w", err)
		}
		return nil
	})
}

// SweepTimeouts снимает неподтвержденные назначения старше дедлайна и
// возвращает число освобожденных смен. Один атомарный запрос, поэтому гонка
// с Accept разрешается на уровне строки: подтвержденное назначение зачистке
// уже не видно.
func (l *Lifecycle) SweepTimeouts(ctx context.Context) (int64, error) {
	cutoff := l.deadlines.ExpiryCutoff(l.clock.Now().UTC())

	reclaimed, err := l.repository.ReclaimExpired(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("reclaim expired assignments: %w", err)
	}
	return reclaimed, nil
}

// CompleteElapsed — пассивный переход confirmed→completed для смен с
// прошедшим временем окончания.
func (l *Lifecycle) CompleteElapsed(ctx context.Context) (int64, error) {
	completed, err := l.repository.CompleteElapsed(ctx, l.clock.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("complete elapsed shifts: %w", err)
	}
	return completed, nil
}

// CancelShift — административная отмена из любого нетерминального статуса.
// Назначение, если было, удаляется, райдер уведомляется best-effort.
func (l *Lifecycle) CancelShift(ctx context.Context, shiftID int64) error {
	if shiftID <= 0 {
		return ErrInvalidShiftID
	}

	var (
		assignedRider int64
		hadAssignment bool
		shift         *entities.Shift
	)

	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		shift, err = l.repository.GetShift(ctx, shiftID)
		if err != nil {
			return fmt.Errorf("get shift: %w", err)
		}
		if shift.Status.Terminal() {
			return ErrShiftAlreadyFinal
		}

		assignedRider, hadAssignment, err = l.repository.DeleteByShift(ctx, shiftID)
		if err != nil {
			return fmt.Errorf("delete assignment: %w", err)
		}

		if err := l.repository.CancelShift(ctx, shiftID); err != nil {
			return fmt.Errorf("cancel shift: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if hadAssignment {
		if err := l.notifier.ShiftCancelled(ctx, assignedRider, *shift); err != nil {
			l.log.With(
				logger.NewField("shift_id", shiftID),
				logger.NewField("rider_id", assignedRider),
				logger.NewField("error", err),
			).Warn("cancellation notification failed")
		}
	}
	return nil
}
