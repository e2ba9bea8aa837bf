package matching

import "errors"

var (
	ErrShiftAlreadyAssigned = errors.New("shift already assigned")
	ErrShiftStateChanged    = errors.New("shift state changed concurrently")
	ErrRiderNotFound        = errors.New("rider not found")

	// errNoFreeCandidate прерывает транзакцию коммита, когда все кандидаты
	// отсеялись на повторной проверке конфликтов. Не ошибка: смена просто
	// остается open до следующего прогона.
	errNoFreeCandidate = errors.New("no free candidate")
)
