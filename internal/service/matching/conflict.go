package matching

import (
	"context"
	"fmt"
	"time"

	"ridermatch/internal/entities"
)

// ConflictGuard отклоняет кандидата, если тот уже держит активное назначение
// с пересекающимся интервалом в тот же день. Читает через репозиторий, а не
// по снапшоту начала батча: вызов внутри транзакции коммита видит назначения,
// сделанные ранее в этом же проходе.
type ConflictGuard struct {
	repository Repository
}

func NewConflictGuard(repository Repository) *ConflictGuard {
	return &ConflictGuard{
		repository: repository,
	}
}

func (g *ConflictGuard) IsFree(ctx context.Context, riderID int64, shift entities.Shift) (bool, error) {
	bookings, err := g.repository.ListBookings(ctx, riderID)
	if err != nil {
		return false, fmt.Errorf("list bookings: %w", err)
	}

	for _, b := range bookings {
		if b.ShiftID == shift.ID {
			return false, nil
		}
		if !sameDate(b.Date, shift.Date) {
			continue
		}
		if entities.Overlaps(b.Start, b.End, shift.Start, shift.End) {
			return false, nil
		}
	}
	return true, nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
