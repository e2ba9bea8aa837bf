package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"ridermatch/internal/entities"
	"ridermatch/internal/service/lifecycle"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ConfirmByRider(ctx context.Context, assignmentID, riderID int64) (*entities.Assignment, error) {
	query := `
		UPDATE assignments
		SET confirmed_by_rider = TRUE
		WHERE id = $1 AND rider_id = $2
		RETURNING id, shift_id, rider_id, assigned_at, confirmed_by_rider, confirmed_by_pizzeria
	`

	return r.scanAssignment(r.querier.QueryRow(ctx, query, assignmentID, riderID))
}

func (r *Repository) ConfirmByPizzeria(ctx context.Context, assignmentID int64) (*entities.Assignment, error) {
	query := `
		UPDATE assignments
		SET confirmed_by_pizzeria = TRUE
		WHERE id = $1
		RETURNING id, shift_id, rider_id, assigned_at, confirmed_by_rider, confirmed_by_pizzeria
	`

	return r.scanAssignment(r.querier.QueryRow(ctx, query, assignmentID))
}

func (r *Repository) scanAssignment(row pgx.Row) (*entities.Assignment, error) {
	var assignmentModel AssignmentDB
	err := row.Scan(
		&assignmentModel.ID,
		&assignmentModel.ShiftID,
		&assignmentModel.RiderID,
		&assignmentModel.AssignedAt,
		&assignmentModel.ConfirmedByRider,
		&assignmentModel.ConfirmedByPizzeria,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository confirm error: %w", err)
	}

	return ToDomain(&assignmentModel), nil
}

func (r *Repository) DeleteForRider(ctx context.Context, assignmentID, riderID int64) (int64, error) {
	query := `
		DELETE FROM assignments
		WHERE id = $1 AND rider_id = $2
		RETURNING shift_id
	`

	var shiftID int64
	err := r.querier.QueryRow(ctx, query, assignmentID, riderID).Scan(&shiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, lifecycle.ErrAssignmentNotFound
		}
		return 0, fmt.Errorf("unexpected assignment repository delete error: %w", err)
	}

	return shiftID, nil
}

func (r *Repository) DeleteByShift(ctx context.Context, shiftID int64) (int64, bool, error) {
	query := `
		DELETE FROM assignments
		WHERE shift_id = $1
		RETURNING rider_id
	`

	var riderID int64
	err := r.querier.QueryRow(ctx, query, shiftID).Scan(&riderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("unexpected assignment repository delete by shift error: %w", err)
	}

	return riderID, true, nil
}

func (r *Repository) RecordRejection(ctx context.Context, shiftID, riderID int64, rejectedAt time.Time) error {
	query := `
		INSERT INTO shift_rejections (shift_id, rider_id, rejected_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.querier.Exec(ctx, query, shiftID, riderID, rejectedAt)
	if err != nil {
		return fmt.Errorf("unexpected assignment repository record rejection error: %w", err)
	}

	return nil
}

func (r *Repository) ReclaimExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	// Удаление и возврат смен в open — одним запросом, чтобы таймаут
	// не оставил смену в assigned без назначения.
	query := `
		WITH reclaimed AS (
			DELETE FROM assignments
			WHERE confirmed_by_rider = FALSE AND assigned_at < $1
			RETURNING shift_id
		)
		UPDATE shifts
		SET status = 'open'
		WHERE id IN (SELECT shift_id FROM reclaimed) AND status = 'assigned'
	`

	tag, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository reclaim error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE shifts
		SET status = 'completed'
		WHERE status = 'confirmed'
		  AND (date + make_interval(mins => end_min)) < $1
	`

	tag, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository complete elapsed error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) GetShift(ctx context.Context, shiftID int64) (*entities.Shift, error) {
	query := `
		SELECT id, pizzeria_id, date, start_min, end_min, hourly_rate, description, status, created_at
		FROM shifts
		WHERE id = $1
	`

	var shiftModel ShiftDB
	err := r.querier.QueryRow(ctx, query, shiftID).Scan(
		&shiftModel.ID,
		&shiftModel.PizzeriaID,
		&shiftModel.Date,
		&shiftModel.StartMin,
		&shiftModel.EndMin,
		&shiftModel.HourlyRate,
		&shiftModel.Description,
		&shiftModel.Status,
		&shiftModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrShiftNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get shift error: %w", err)
	}

	return ToShiftDomain(&shiftModel), nil
}

func (r *Repository) SetShiftStatusFrom(ctx context.Context, shiftID int64, from, to entities.ShiftStatusType) error {
	query := `
		UPDATE shifts
		SET status = $1
		WHERE id = $2 AND status = $3
	`

	tag, err := r.querier.Exec(ctx, query, to.String(), shiftID, from.String())
	if err != nil {
		return fmt.Errorf("unexpected assignment repository set status error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return lifecycle.ErrShiftStateChanged
	}

	return nil
}

func (r *Repository) CancelShift(ctx context.Context, shiftID int64) error {
	query := `
		UPDATE shifts
		SET status = 'cancelled'
		WHERE id = $1 AND status NOT IN ('completed', 'cancelled')
	`

	tag, err := r.querier.Exec(ctx, query, shiftID)
	if err != nil {
		return fmt.Errorf("unexpected assignment repository cancel shift error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return lifecycle.ErrShiftStateChanged
	}

	return nil
}
