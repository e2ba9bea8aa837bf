package rider

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidTransport      = errors.New("invalid transport type")
	ErrInvalidRating         = errors.New("invalid rating")
	ErrInvalidDayOfWeek      = errors.New("invalid day of week")

	// ErrInvalidWindow — окно с start >= end отклоняется на границе и в
	// хранилище не попадает.
	ErrInvalidWindow = errors.New("invalid availability window")

	ErrRiderNotFound      = errors.New("rider not found")
	ErrConflict           = errors.New("resource already exists")
	ErrAvailabilityExists = errors.New("availability window already exists")
)
