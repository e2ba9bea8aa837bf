package entities

import "time"

type Shift struct {
	ID          int64
	PizzeriaID  int64
	Date        time.Time // полночь UTC дня смены
	Start       TimeOfDay
	End         TimeOfDay
	HourlyRate  float64
	Description string
	Status      ShiftStatusType
	CreatedAt   time.Time
}

type ShiftStatusType string

const (
	ShiftOpen      ShiftStatusType = "open"
	ShiftAssigned  ShiftStatusType = "assigned"
	ShiftConfirmed ShiftStatusType = "confirmed"
	ShiftCompleted ShiftStatusType = "completed"
	ShiftCancelled ShiftStatusType = "cancelled"
)

func (s ShiftStatusType) String() string {
	return string(s)
}

// Terminal: из completed и cancelled переходов нет.
func (s ShiftStatusType) Terminal() bool {
	return s == ShiftCompleted || s == ShiftCancelled
}

func (s Shift) DayOfWeek() int {
	return DayOfWeekOf(s.Date)
}

func (s Shift) StartsAt() time.Time {
	return s.Date.Add(time.Duration(s.Start) * time.Minute)
}

func (s Shift) EndsAt() time.Time {
	return s.Date.Add(time.Duration(s.End) * time.Minute)
}

type ShiftModify struct {
	ID          *int64
	PizzeriaID  *int64
	Date        *time.Time
	Start       *TimeOfDay
	End         *TimeOfDay
	HourlyRate  *float64
	Description *string
	Status      *ShiftStatusType
}
