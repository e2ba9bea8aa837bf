package notifier

import (
	"time"

	"ridermatch/internal/entities"
)

const (
	EventAssignmentOffered = "assignment_offered"
	EventShiftCancelled    = "shift_cancelled"
)

type Envelope struct {
	Event      string     `json:"event"`
	RiderID    int64      `json:"rider_id"`
	OccurredAt time.Time  `json:"occurred_at"`
	Assignment *Offer     `json:"assignment,omitempty"`
	Shift      ShiftBrief `json:"shift"`
}

type Offer struct {
	AssignmentID int64     `json:"assignment_id"`
	AssignedAt   time.Time `json:"assigned_at"`
}

type ShiftBrief struct {
	ShiftID    int64   `json:"shift_id"`
	PizzeriaID int64   `json:"pizzeria_id"`
	Date       string  `json:"date"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	HourlyRate float64 `json:"hourly_rate"`
}

func toShiftBrief(shift entities.Shift) ShiftBrief {
	return ShiftBrief{
		ShiftID:    shift.ID,
		PizzeriaID: shift.PizzeriaID,
		Date:       shift.Date.Format("2006-01-02"),
		Start:      shift.Start.String(),
		End:        shift.End.String(),
		HourlyRate: shift.HourlyRate,
	}
}
