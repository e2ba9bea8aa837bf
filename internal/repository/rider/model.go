package rider

import "time"

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
