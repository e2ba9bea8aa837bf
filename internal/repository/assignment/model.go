package assignment

import "time"

type AssignmentDB struct {
	ID                  int64
	ShiftID             int64
	RiderID             int64
	AssignedAt          time.Time
	ConfirmedByRider    bool
	ConfirmedByPizzeria bool
}

type ShiftDB struct {
	ID          int64
	PizzeriaID  int64
	Date        time.Time
	StartMin    int16
	EndMin      int16
	HourlyRate  float64
	Description string
	Status      string
	CreatedAt   time.Time
}
