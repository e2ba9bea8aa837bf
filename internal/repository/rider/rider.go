package rider

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"ridermatch/internal/entities"
	"ridermatch/internal/repository"
	"ridermatch/internal/service/rider"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error) {
	query := `
		INSERT INTO riders (name, phone, telegram_id, transport_type, max_distance_km, active, rating)
		VALUES ($1, $2, $3, $4, COALESCE($5, 10), COALESCE($6, TRUE), COALESCE($7, 5.00))
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		riderModifyEntity.Name,
		riderModifyEntity.Phone,
		riderModifyEntity.TelegramID,
		riderModifyEntity.TransportType,
		riderModifyEntity.MaxDistanceKm,
		riderModifyEntity.Active,
		riderModifyEntity.Rating,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, rider.ErrConflict
		}
		return 0, fmt.Errorf("unexpected rider repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, riderModifyEntity entities.RiderModify) (*entities.Rider, error) {
	builder := qb.Update("riders")

	if riderModifyEntity.Name != nil {
		builder = builder.Set("name", riderModifyEntity.Name)
	}
	if riderModifyEntity.Phone != nil {
		builder = builder.Set("phone", riderModifyEntity.Phone)
	}
	if riderModifyEntity.TransportType != nil {
		builder = builder.Set("transport_type", riderModifyEntity.TransportType.String())
	}
	if riderModifyEntity.MaxDistanceKm != nil {
		builder = builder.Set("max_distance_km", riderModifyEntity.MaxDistanceKm)
	}
	if riderModifyEntity.Active != nil {
		builder = builder.Set("active", riderModifyEntity.Active)
	}
	if riderModifyEntity.Rating != nil {
		builder = builder.Set("rating", riderModifyEntity.Rating)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": riderModifyEntity.ID}).
		Suffix("RETURNING id, name, phone, telegram_id, transport_type, max_distance_km, active, rating, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	var riderModel RiderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, rider.ErrConflict
		}
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	return ToDomain(&riderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Rider, error) {
	query := `
		SELECT id, name, phone, telegram_id, transport_type, max_distance_km, active, rating, created_at, updated_at
		FROM riders
		WHERE id = $1
	`

	var riderModel RiderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository get error: %w", err)
	}

	return ToDomain(&riderModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Rider, error) {
	query := `
		SELECT id, name, phone, telegram_id, transport_type, max_distance_km, active, rating, created_at, updated_at
		FROM riders
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository get all error: %w", err)
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
			return nil, fmt.Errorf("unexpected rider repository scan error: %w", err)
		}
		riders = append(riders, *ToDomain(&riderModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rider repository rows error: %w", err)
	}

	return riders, nil
}

func (r *Repository) CreateAvailability(ctx context.Context, window entities.AvailabilityWindow) (int64, error) {
	query := `
		INSERT INTO rider_availability (rider_id, day_of_week, start_min, end_min, preferred)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		window.RiderID,
		window.DayOfWeek,
		int(window.Start),
		int(window.End),
		window.Preferred,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, rider.ErrAvailabilityExists
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, rider.ErrRiderNotFound
		}
		return 0, fmt.Errorf("unexpected rider repository create availability error: %w", err)
	}

	return id, nil
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
		return nil, fmt.Errorf("unexpected rider repository list availability error: %w", err)
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
			return nil, fmt.Errorf("unexpected rider repository scan error: %w", err)
		}
		windows = append(windows, ToAvailabilityDomain(&windowModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rider repository rows error: %w", err)
	}

	return windows, nil
}
