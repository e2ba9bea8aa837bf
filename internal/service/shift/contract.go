//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shift_test
package shift

import (
	"context"

	"ridermatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shiftModifyEntity entities.ShiftModify) (*entities.Shift, error)
	GetByID(ctx context.Context, id int64) (*entities.Shift, error)
	ListOpen(ctx context.Context) ([]entities.Shift, error)
	GetPizzeria(ctx context.Context, id int64) (*entities.Pizzeria, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
