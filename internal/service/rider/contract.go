//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"

	"ridermatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Rider, error)
	GetAll(ctx context.Context) ([]entities.Rider, error)
	Update(ctx context.Context, riderModifyEntity entities.RiderModify) (*entities.Rider, error)

	CreateAvailability(ctx context.Context, window entities.AvailabilityWindow) (int64, error)
	ListAvailability(ctx context.Context, riderID int64) ([]entities.AvailabilityWindow, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
