// Package dto — транспортные структуры REST API. Пишутся руками: схемы
// небольшие и меняются вместе с хендлерами.
package dto

type RiderCreate struct {
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	TelegramID    int64    `json:"telegram_id"`
	TransportType string   `json:"transport_type"`
	MaxDistanceKm *int     `json:"max_distance_km,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
}

type RiderCreateResponse struct {
	ID int64 `json:"id"`
}

type RiderUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	TransportType *string  `json:"transport_type,omitempty"`
	MaxDistanceKm *int     `json:"max_distance_km,omitempty"`
	Active        *bool    `json:"active,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
}

type Rider struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	TelegramID    int64   `json:"telegram_id"`
	TransportType string  `json:"transport_type"`
	MaxDistanceKm int     `json:"max_distance_km"`
	Active        bool    `json:"active"`
	Rating        float64 `json:"rating"`
}

type AvailabilityCreate struct {
	DayOfWeek int    `json:"day_of_week"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Preferred bool   `json:"preferred"`
}

type AvailabilityCreateResponse struct {
	ID int64 `json:"id"`
}

type AvailabilityWindow struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Preferred bool   `json:"preferred"`
}

type ShiftCreate struct {
	PizzeriaID  int64   `json:"pizzeria_id"`
	Date        string  `json:"date"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	HourlyRate  float64 `json:"hourly_rate"`
	Description string  `json:"description,omitempty"`
}

type Shift struct {
	ID          int64   `json:"id"`
	PizzeriaID  int64   `json:"pizzeria_id"`
	Date        string  `json:"date"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	HourlyRate  float64 `json:"hourly_rate"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status"`
}

type ShiftList struct {
	Shifts []Shift `json:"shifts"`
}

type AssignmentAction struct {
	RiderID int64 `json:"rider_id"`
}

type MatchRunResponse struct {
	AssignmentsCreated int64 `json:"assignments_created"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
