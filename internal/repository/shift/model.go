package shift

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

type PizzeriaDB struct {
	ID              int64
	Name            string
	Address         string
	Latitude        float64
	Longitude       float64
	Phone           string
	TelegramContact int64
	Active          bool
	CreatedAt       time.Time
}
