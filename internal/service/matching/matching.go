package matching

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ridermatch/internal/entities"
	"ridermatch/pkg/logger"
)

// Engine — батчевый мэтчинг открытых смен. Прогон может быть запущен из
// нескольких источников одновременно (изменение доступности, отказ, зачистка
// таймаутов, периодический тик); mu сериализует прогоны целиком, а коммит
// каждой смены идет отдельной Serializable-транзакцией с повторной проверкой
// конфликтов внутри нее.
type Engine struct {
	repository Repository
	candidates CandidateSource
	ranker     Ranker
	conflicts  ConflictChecker
	notifier   Notifier
	clock      Clock
	txManager  TxManager
	log        engineLogger

	mu sync.Mutex
}

func New(
	log engineLogger,
	repository Repository,
	candidates CandidateSource,
	ranker Ranker,
	conflicts ConflictChecker,
	notifier Notifier,
	clock Clock,
	txManager TxManager,
) *Engine {
	return &Engine{
		repository: repository,
		candidates: candidates,
		ranker:     ranker,
		conflicts:  conflicts,
		notifier:   notifier,
		clock:      clock,
		txManager:  txManager,
		log:        log.With(logger.NewField("component", "matching_engine")),
	}
}

// RunBatch мэтчит все открытые смены и возвращает число созданных назначений.
// Повторный вызов без изменения состояния возвращает 0: уже назначенные смены
// не попадают в выборку. Ошибка по одной смене не прерывает остальные.
func (e *Engine) RunBatch(ctx context.Context) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	defer func() {
		BatchDuration.Observe(time.Since(start).Seconds())
	}()
	BatchesTotal.Inc()

	shifts, err := e.repository.ListOpenShifts(ctx)
	if err != nil {
		return 0, fmt.Errorf("list open shifts: %w", err)
	}

	var created int64
	for _, shift := range shifts {
		assignment, err := e.matchShift(ctx, shift)
		if err != nil {
			e.logShiftSkip(shift, err)
			continue
		}
		if assignment == nil {
			continue
		}

		created++
		AssignmentsCreatedTotal.Inc()

		// Нотификация после коммита, best-effort: сбой доставки не
		// откатывает назначение.
		if err := e.notifier.AssignmentOffered(ctx, assignment.RiderID, *assignment, shift); err != nil {
			e.log.With(
				logger.NewField("shift_id", shift.ID),
				logger.NewField("rider_id", assignment.RiderID),
				logger.NewField("error", err),
			).Warn("assignment notification failed")
		}
	}

	return created, nil
}

// matchShift возвращает (nil, nil), когда кандидата нет — это нормальный
// исход, не ошибка.
func (e *Engine) matchShift(ctx context.Context, shift entities.Shift) (*entities.Assignment, error) {
	candidates, err := e.candidates.CandidatesFor(ctx, shift)
	if err != nil {
		return nil, fmt.Errorf("candidates: %w", err)
	}
	if len(candidates) == 0 {
		ShiftsSkippedTotal.WithLabelValues(skipNoCandidates).Inc()
		return nil, nil
	}

	ranked := e.ranker.Rank(candidates)

	var assignment *entities.Assignment
	err = e.txManager.Do(ctx, func(ctx context.Context) error {
		for _, candidate := range ranked {
			// Повторная проверка внутри транзакции: кандидат мог получить
			// пересекающуюся смену раньше в этом же проходе.
			free, err := e.conflicts.IsFree(ctx, candidate.RiderID, shift)
			if err != nil {
				return fmt.Errorf("conflict check rider %d: %w", candidate.RiderID, err)
			}
			if !free {
				continue
			}

			created, err := e.repository.CreateAssignment(ctx, shift.ID, candidate.RiderID, e.clock.Now().UTC())
			if err != nil {
				return fmt.Errorf("create assignment: %w", err)
			}

			err = e.repository.SetShiftStatusFrom(ctx, shift.ID, entities.ShiftOpen, entities.ShiftAssigned)
			if err != nil {
				return fmt.Errorf("transition shift to assigned: %w", err)
			}

			assignment = created
			return nil
		}
		return errNoFreeCandidate
	})
	if err != nil {
		if errors.Is(err, errNoFreeCandidate) {
			ShiftsSkippedTotal.WithLabelValues(skipAllBusy).Inc()
			return nil, nil
		}
		return nil, err
	}

	return assignment, nil
}

func (e *Engine) logShiftSkip(shift entities.Shift, err error) {
	reason := skipStoreError
	if errors.Is(err, ErrShiftAlreadyAssigned) || errors.Is(err, ErrShiftStateChanged) {
		reason = skipLostRace
	}
	ShiftsSkippedTotal.WithLabelValues(reason).Inc()

	e.log.With(
		logger.NewField("shift_id", shift.ID),
		logger.NewField("reason", reason),
		logger.NewField("error", err),
	).Warn("shift skipped in batch run")
}
