package shift

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShiftID        = errors.New("invalid shift id")
	ErrInvalidPizzeriaID     = errors.New("invalid pizzeria id")
	ErrInvalidInterval       = errors.New("invalid shift interval")
	ErrInvalidHourlyRate     = errors.New("invalid hourly rate")

	ErrShiftNotFound    = errors.New("shift not found")
	ErrPizzeriaNotFound = errors.New("pizzeria not found")
	ErrPizzeriaInactive = errors.New("pizzeria is not active")
)
