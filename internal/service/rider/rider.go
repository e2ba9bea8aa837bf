package rider

import (
	"context"
	"fmt"

	"ridermatch/internal/entities"
)

type Rider struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Rider {
	return &Rider{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Rider) CreateRider(ctx context.Context, riderModify entities.RiderModify) (int64, error) {
	if riderModify.Name == nil ||
		riderModify.Phone == nil ||
		riderModify.TelegramID == nil ||
		riderModify.TransportType == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*riderModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*riderModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidTransport(riderModify.TransportType.String()) {
		return 0, ErrInvalidTransport
	}
	if riderModify.Rating != nil && !isValidRating(*riderModify.Rating) {
		return 0, ErrInvalidRating
	}

	id, err := s.repository.Create(ctx, riderModify)
	if err != nil {
		return 0, fmt.Errorf("create rider: %w", err)
	}

	return id, nil
}

func (s *Rider) UpdateRider(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error) {
	if riderModify.ID == nil || *riderModify.ID <= 0 {
		return nil, ErrInvalidRiderID
	}

	if riderModify.Name == nil &&
		riderModify.Phone == nil &&
		riderModify.TransportType == nil &&
		riderModify.MaxDistanceKm == nil &&
		riderModify.Active == nil &&
		riderModify.Rating == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if riderModify.Name != nil && !isValidName(*riderModify.Name) {
		return nil, ErrInvalidName
	}
	if riderModify.Phone != nil && !isValidPhone(*riderModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if riderModify.TransportType != nil && !isValidTransport(riderModify.TransportType.String()) {
		return nil, ErrInvalidTransport
	}
	if riderModify.Rating != nil && !isValidRating(*riderModify.Rating) {
		return nil, ErrInvalidRating
	}

	rider, err := s.repository.Update(ctx, riderModify)
	if err != nil {
		return nil, fmt.Errorf("update rider: %w", err)
	}
	return rider, nil
}

func (s *Rider) GetRider(ctx context.Context, id int64) (*entities.Rider, error) {
	if id <= 0 {
		return nil, ErrInvalidRiderID
	}

	rider, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}
	return rider, nil
}

func (s *Rider) GetRiders(ctx context.Context) ([]entities.Rider, error) {
	riders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get riders: %w", err)
	}
	return riders, nil
}

// AddAvailability валидирует окно до записи: невалидный интервал никогда не
// доходит до индекса доступности.
func (s *Rider) AddAvailability(ctx context.Context, window entities.AvailabilityWindow) (int64, error) {
	if window.RiderID <= 0 {
		return 0, ErrInvalidRiderID
	}
	if !isValidDayOfWeek(window.DayOfWeek) {
		return 0, ErrInvalidDayOfWeek
	}
	if !isValidWindow(window.Start, window.End) {
		return 0, ErrInvalidWindow
	}

	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repository.GetByID(ctx, window.RiderID); err != nil {
			return fmt.Errorf("get rider: %w", err)
		}

		var err error
		id, err = s.repository.CreateAvailability(ctx, window)
		if err != nil {
			return fmt.Errorf("create availability: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Rider) GetAvailability(ctx context.Context, riderID int64) ([]entities.AvailabilityWindow, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}

	windows, err := s.repository.ListAvailability(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	return windows, nil
}
