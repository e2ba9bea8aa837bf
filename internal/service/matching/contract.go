//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"
	"time"

	"ridermatch/internal/entities"
	"ridermatch/pkg/logger"
)

type Repository interface {
	// ListOpenShifts возвращает открытые смены, отсортированные по
	// (date, start, id) — ранние смены мэтчатся первыми.
	ListOpenShifts(ctx context.Context) ([]entities.Shift, error)

	ListActiveRiders(ctx context.Context) ([]entities.Rider, error)
	ListAvailability(ctx context.Context, riderID int64) ([]entities.AvailabilityWindow, error)

	// ListBookings возвращает активные (assigned/confirmed) назначения райдера
	// вместе с интервалами их смен.
	ListBookings(ctx context.Context, riderID int64) ([]entities.Booking, error)

	// ListRejectedRiders возвращает райдеров, отказавшихся от смены после since.
	ListRejectedRiders(ctx context.Context, shiftID int64, since time.Time) ([]int64, error)

	CreateAssignment(ctx context.Context, shiftID, riderID int64, assignedAt time.Time) (*entities.Assignment, error)

	// SetShiftStatusFrom — compare-and-set статуса смены. Если текущий статус
	// не равен from, возвращает ErrShiftStateChanged.
	SetShiftStatusFrom(ctx context.Context, shiftID int64, from, to entities.ShiftStatusType) error
}

// Candidate — райдер, прошедший фильтр доступности, с заранее снятыми
// полями для скоринга.
type Candidate struct {
	RiderID   int64
	Preferred bool
	Rating    float64
	WeekLoad  int
}

type CandidateSource interface {
	CandidatesFor(ctx context.Context, shift entities.Shift) ([]Candidate, error)
}

type Ranker interface {
	Rank(candidates []Candidate) []Candidate
}

type ConflictChecker interface {
	IsFree(ctx context.Context, riderID int64, shift entities.Shift) (bool, error)
}

type Notifier interface {
	AssignmentOffered(ctx context.Context, riderID int64, assignment entities.Assignment, shift entities.Shift) error
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type engineLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
