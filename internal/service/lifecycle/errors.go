package lifecycle

import "errors"

var (
	ErrInvalidAssignmentID = errors.New("invalid assignment id")
	ErrInvalidRiderID      = errors.New("invalid rider id")
	ErrInvalidShiftID      = errors.New("invalid shift id")

	// ErrAssignmentNotFound: назначения нет — либо id не существовал, либо
	// строку уже забрал таймаут или отказ. Вызывающий перечитывает состояние.
	ErrAssignmentNotFound = errors.New("assignment not found")

	ErrShiftNotFound     = errors.New("shift not found")
	ErrShiftStateChanged = errors.New("shift state changed concurrently")
	ErrShiftAlreadyFinal = errors.New("shift is in a terminal state")
)
