package matching

import (
	"context"
	"fmt"
	"time"

	"ridermatch/internal/entities"
)

// AvailabilityIndex отбирает кандидатов на смену: активный райдер с окном
// доступности, полностью покрывающим интервал смены в ее день недели.
// max_distance_km райдера сознательно не фильтр: локация райдера не
// моделируется, считать дистанцию не из чего, поле ждет внешний геокодинг.
type AvailabilityIndex struct {
	repository Repository
	clock      Clock

	// rejectionCooldown исключает отказавшегося райдера из повторного
	// мэтчинга на ту же смену. 0 — без исключения.
	rejectionCooldown time.Duration
}

func NewAvailabilityIndex(repository Repository, clock Clock, rejectionCooldown time.Duration) *AvailabilityIndex {
	return &AvailabilityIndex{
		repository:        repository,
		clock:             clock,
		rejectionCooldown: rejectionCooldown,
	}
}

func (i *AvailabilityIndex) CandidatesFor(ctx context.Context, shift entities.Shift) ([]Candidate, error) {
	riders, err := i.repository.ListActiveRiders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active riders: %w", err)
	}

	rejected, err := i.recentlyRejected(ctx, shift.ID)
	if err != nil {
		return nil, err
	}

	dayOfWeek := shift.DayOfWeek()

	candidates := make([]Candidate, 0, len(riders))
	for _, rider := range riders {
		if rejected[rider.ID] {
			continue
		}

		windows, err := i.repository.ListAvailability(ctx, rider.ID)
		if err != nil {
			return nil, fmt.Errorf("list availability for rider %d: %w", rider.ID, err)
		}

		covered, preferred := coveringWindow(windows, dayOfWeek, shift.Start, shift.End)
		if !covered {
			continue
		}

		bookings, err := i.repository.ListBookings(ctx, rider.ID)
		if err != nil {
			return nil, fmt.Errorf("list bookings for rider %d: %w", rider.ID, err)
		}

		candidates = append(candidates, Candidate{
			RiderID:   rider.ID,
			Preferred: preferred,
			Rating:    rider.Rating,
			WeekLoad:  weekLoad(bookings, shift.Date),
		})
	}

	return candidates, nil
}

func (i *AvailabilityIndex) recentlyRejected(ctx context.Context, shiftID int64) (map[int64]bool, error) {
	if i.rejectionCooldown <= 0 {
		return nil, nil
	}

	since := i.clock.Now().UTC().Add(-i.rejectionCooldown)
	riderIDs, err := i.repository.ListRejectedRiders(ctx, shiftID, since)
	if err != nil {
		return nil, fmt.Errorf("list rejected riders: %w", err)
	}

	rejected := make(map[int64]bool, len(riderIDs))
	for _, id := range riderIDs {
		rejected[id] = true
	}
	return rejected, nil
}

// coveringWindow ищет окно нужного дня, полностью содержащее интервал смены.
// Если таких несколько, preferred-окно имеет приоритет.
func coveringWindow(windows []entities.AvailabilityWindow, dayOfWeek int, start, end entities.TimeOfDay) (covered, preferred bool) {
	for _, w := range windows {
		if w.DayOfWeek != dayOfWeek || !w.Covers(start, end) {
			continue
		}
		covered = true
		if w.Preferred {
			return true, true
		}
	}
	return covered, false
}

func weekLoad(bookings []entities.Booking, date time.Time) int {
	load := 0
	for _, b := range bookings {
		if b.SameISOWeek(date) {
			load++
		}
	}
	return load
}
