package matching

import "time"

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

type RiderDB struct {
	ID            int64
	Name          string
	Phone         string
	TelegramID    int64
	TransportType string
	MaxDistanceKm int
	Active        bool
	Rating        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AvailabilityDB struct {
	ID        int64
	RiderID   int64
	DayOfWeek int16
	StartMin  int16
	EndMin    int16
	Preferred bool
}

type BookingDB struct {
	AssignmentID int64
	ShiftID      int64
	Date         time.Time
	StartMin     int16
	EndMin       int16
}

type AssignmentDB struct {
	ID                  int64
	ShiftID             int64
	RiderID             int64
	AssignedAt          time.Time
	ConfirmedByRider    bool
	ConfirmedByPizzeria bool
}
