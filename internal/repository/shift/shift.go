package shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"ridermatch/internal/entities"
	"ridermatch/internal/repository"
	"ridermatch/internal/service/shift"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shiftModifyEntity entities.ShiftModify) (*entities.Shift, error) {
	query := `
		INSERT INTO shifts (pizzeria_id, date, start_min, end_min, hourly_rate, description, status)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, ''), $7)
		RETURNING id, pizzeria_id, date, start_min, end_min, hourly_rate, description, status, created_at
	`

	var shiftModel ShiftDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shiftModifyEntity.PizzeriaID,
		shiftModifyEntity.Date,
		int(*shiftModifyEntity.Start),
		int(*shiftModifyEntity.End),
		shiftModifyEntity.HourlyRate,
		shiftModifyEntity.Description,
		shiftModifyEntity.Status.String(),
	).Scan(
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
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, shift.ErrPizzeriaNotFound
		}
		return nil, fmt.Errorf("unexpected shift repository create error: %w", err)
	}

	return ToDomain(&shiftModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shift, error) {
	query := `
		SELECT id, pizzeria_id, date, start_min, end_min, hourly_rate, description, status, created_at
		FROM shifts
		WHERE id = $1
	`

	var shiftModel ShiftDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
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
			return nil, shift.ErrShiftNotFound
		}
		return nil, fmt.Errorf("unexpected shift repository get error: %w", err)
	}

	return ToDomain(&shiftModel), nil
}

func (r *Repository) ListOpen(ctx context.Context) ([]entities.Shift, error) {
	query := `
		SELECT id, pizzeria_id, date, start_min, end_min, hourly_rate, description, status, created_at
		FROM shifts
		WHERE status = 'open'
		ORDER BY date, start_min, id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shift repository list open error: %w", err)
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
			return nil, fmt.Errorf("unexpected shift repository scan error: %w", err)
		}
		shifts = append(shifts, *ToDomain(&shiftModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shift repository rows error: %w", err)
	}

	return shifts, nil
}

func (r *Repository) GetPizzeria(ctx context.Context, id int64) (*entities.Pizzeria, error) {
	query := `
		SELECT id, name, address, latitude, longitude, phone, telegram_contact, active, created_at
		FROM pizzerias
		WHERE id = $1
	`

	var pizzeriaModel PizzeriaDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&pizzeriaModel.ID,
		&pizzeriaModel.Name,
		&pizzeriaModel.Address,
		&pizzeriaModel.Latitude,
		&pizzeriaModel.Longitude,
		&pizzeriaModel.Phone,
		&pizzeriaModel.TelegramContact,
		&pizzeriaModel.Active,
		&pizzeriaModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrPizzeriaNotFound
		}
		return nil, fmt.Errorf("unexpected shift repository get pizzeria error: %w", err)
	}

	return ToPizzeriaDomain(&pizzeriaModel), nil
}
