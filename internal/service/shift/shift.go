package shift

import (
	"context"
	"fmt"

	"ridermatch/internal/entities"
)

type Shift struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Shift {
	return &Shift{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateShift публикует смену от имени пиццерии. Смена рождается в open и
// ждет ближайшего прогона мэтчинга.
func (s *Shift) CreateShift(ctx context.Context, shiftModify entities.ShiftModify) (*entities.Shift, error) {
	if shiftModify.PizzeriaID == nil ||
		shiftModify.Date == nil ||
		shiftModify.Start == nil ||
		shiftModify.End == nil ||
		shiftModify.HourlyRate == nil {
		return nil, ErrMissingRequiredFields
	}

	if *shiftModify.PizzeriaID <= 0 {
		return nil, ErrInvalidPizzeriaID
	}
	if !isValidInterval(*shiftModify.Start, *shiftModify.End) {
		return nil, ErrInvalidInterval
	}
	if !isValidHourlyRate(*shiftModify.HourlyRate) {
		return nil, ErrInvalidHourlyRate
	}

	var created *entities.Shift
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		pizzeria, err := s.repository.GetPizzeria(ctx, *shiftModify.PizzeriaID)
		if err != nil {
			return fmt.Errorf("get pizzeria: %w", err)
		}
		if !pizzeria.Active {
			return ErrPizzeriaInactive
		}

		status := entities.ShiftOpen
		shiftModify.Status = &status

		created, err = s.repository.Create(ctx, shiftModify)
		if err != nil {
			return fmt.Errorf("create shift: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Shift) GetShift(ctx context.Context, id int64) (*entities.Shift, error) {
	if id <= 0 {
		return nil, ErrInvalidShiftID
	}

	shift, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return shift, nil
}

func (s *Shift) GetOpenShifts(ctx context.Context) ([]entities.Shift, error) {
	shifts, err := s.repository.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open shifts: %w", err)
	}
	return shifts, nil
}
