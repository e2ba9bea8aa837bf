package entities

import "time"

type Rider struct {
	ID            int64
	Name          string
	Phone         string
	TelegramID    int64
	TransportType RiderTransportType
	MaxDistanceKm int
	Active        bool
	Rating        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type RiderTransportType string

const (
	Bicycle RiderTransportType = "bicycle"
	Scooter RiderTransportType = "scooter"
	Car     RiderTransportType = "car"
)

const DefaultTransportType = Bicycle

func (t RiderTransportType) String() string {
	return string(t)
}

const (
	MinRating = 0.0
	MaxRating = 5.0
)

type RiderModify struct {
	ID            *int64
	Name          *string
	Phone         *string
	TelegramID    *int64
	TransportType *RiderTransportType
	MaxDistanceKm *int
	Active        *bool
	Rating        *float64
}
