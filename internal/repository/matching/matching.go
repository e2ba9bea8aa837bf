package matching

import (
	"context"
	"fmt"
	"time"

	"ridermatch/internal/entities"
	"ridermatch/internal/repository"
	"ridermatch/internal/service/matching"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListOpenShifts(ctx context.Context) ([]entities.Shift, error) {
	query := `
		SELECT id, pizzeria_id, date, start_min, end_min, hourly_rate, description, status, created_at
		FROM shifts
		WHERE status = 'open'
		ORDER BY date, start_min, id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected matching repository list open shifts error: %w", err)
	}
	defer rows.Close()

	var shifts []entities.Shift
	for rows.Next() {
		var shiftModel ShiftDB
		err := rows.Scan(
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
			return nil, fmt.Errorf("unexpected matching repository scan error: %w", err)
		}
		shifts = append(shifts, ToShiftDomain(&shiftModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected matching repository rows error: %w", err)
	}

	return shifts, nil
}

func (r *Repository) ListActiveRiders(ctx context.Context) ([]entities.Rider, error) {
	query := `
		SELECT id, name, phone, telegram_id, transport_type, max_distance_km, active, rating, created_at, updated_at
		FROM riders
		WHERE active = TRUE
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected matching repository list riders error: %w", err)
	}
	defer rows.Close()

	var riders []entities.Rider
	for rows.Next() {
		var riderModel RiderDB
		err := rows.Scan(
			&riderModel.ID,
			&riderModel.Name,
			&riderModel.Phone,
			&riderModel.TelegramID,
			&riderModel.TransportType,
			&riderModel.MaxDistanceKm,
			&riderModel.Active,
			&riderModel.Rating,
			&riderModel.CreatedAt,
			&riderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected matching repository scan error: %w", err)
		}
		riders = append(riders, ToRiderDomain(&riderModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected matching repository rows error: %w", err)
	}

	return riders, nil
}

func (r *Repository) ListAvailability(ctx context.Context, riderID int64) ([]entities.AvailabilityWindow, error) {
	query := `
		SELECT id, rider_id, day_of_week, start_min, end_min, preferred
		FROM rider_availability
		WHERE rider_id = $1
		ORDER BY day_of_week, start_min
	`

	rows, err := r.querier.Query(ctx, query, riderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected matching repository list availability error: %w", err)
	}
	defer rows.Close()

	var windows []entities.AvailabilityWindow
	for rows.Next() {
		var windowModel AvailabilityDB
		err := rows.Scan(
			&windowModel.ID,
			&windowModel.RiderID,
			&windowModel.DayOfWeek,
			&windowModel.StartMin,
			&windowModel.EndMin,
			&windowModel.Preferred,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected matching repository scan error: %w", err)
		}
		windows = append(windows, ToAvailabilityDomain(&windowModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected matching repository rows error: %w", err)
	}

	return windows, nil
}

func (r *Repository) ListBookings(ctx context.Context, riderID int64) ([]entities.Booking, error) {
	query := `
		SELECT a.id, a.shift_id, s.date, s.start_min, s.end_min
		FROM assignments a
		JOIN shifts s ON s.id = a.shift_id
		WHERE a.rider_id = $1 AND s.status IN ('assigned', 'confirmed')
		ORDER BY s.date, s.start_min
	`

	rows, err := r.querier.Query(ctx, query, riderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected matching repository list bookings error: %w", err)
	}
	defer rows.Close()

	var bookings []entities.Booking
	for rows.Next() {
		var bookingModel BookingDB
		err := rows.Scan(
			&bookingModel.AssignmentID,
			&bookingModel.ShiftID,
			&bookingModel.Date,
			&bookingModel.StartMin,
			&bookingModel.EndMin,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected matching repository scan error: %w", err)
		}
		bookings = append(bookings, ToBookingDomain(&bookingModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected matching repository rows error: %w", err)
	}

	return bookings, nil
}

func (r *Repository) ListRejectedRiders(ctx context.Context, shiftID int64, since time.Time) ([]int64, error) {
	query := `
		SELECT rider_id
		FROM shift_rejections
		WHERE shift_id = $1 AND rejected_at >= $2
	`

	rows, err := r.querier.Query(ctx, query, shiftID, since)
	if err != nil {
		return nil, fmt.Errorf("unexpected matching repository list rejections error: %w", err)
	}
	defer rows.Close()

	var riderIDs []int64
	for rows.Next() {
		var riderID int64
		if err := rows.Scan(&riderID); err != nil {
			return nil, fmt.Errorf("unexpected matching repository scan error: %w", err)
		}
		riderIDs = append(riderIDs, riderID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected matching repository rows error: %w", err)
	}

	return riderIDs, nil
}

func (r *Repository) CreateAssignment(ctx context.Context, shiftID, riderID int64, assignedAt time.Time) (*entities.Assignment, error) {
	query := `
		INSERT INTO assignments (shift_id, rider_id, assigned_at)
		VALUES ($1, $2, $3)
		RETURNING id, shift_id, rider_id, assigned_at, confirmed_by_rider, confirmed_by_pizzeria
	`

	var assignmentModel AssignmentDB
	err := r.querier.QueryRow(ctx, query, shiftID, riderID, assignedAt).Scan(
		&assignmentModel.ID,
		&assignmentModel.ShiftID,
		&assignmentModel.RiderID,
		&assignmentModel.AssignedAt,
		&assignmentModel.ConfirmedByRider,
		&assignmentModel.ConfirmedByPizzeria,
	)
	if err != nil {
		// UNIQUE(shift_id): вторая попытка назначить ту же смену.
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, matching.ErrShiftAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected matching repository create assignment error: %w", err)
	}

	return ToAssignmentDomain(&assignmentModel), nil
}

func (r *Repository) SetShiftStatusFrom(ctx context.Context, shiftID int64, from, to entities.ShiftStatusType) error {
	query := `
		UPDATE shifts
		SET status = $1
		WHERE id = $2 AND status = $3
	`

	tag, err := r.querier.Exec(ctx, query, to.String(), shiftID, from.String())
	if err != nil {
		return fmt.Errorf("unexpected matching repository set status error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return matching.ErrShiftStateChanged
	}

	return nil
}
