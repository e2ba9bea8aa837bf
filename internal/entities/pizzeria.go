package entities

import "time"

// Pizzeria для ядра мэтчинга read-only: записи создает административный
// контур, который в этот сервис не входит.
type Pizzeria struct {
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
