package shift

import "ridermatch/internal/entities"

func isValidInterval(start, end entities.TimeOfDay) bool {
	return start.Valid() && end.Valid() && start < end
}

func isValidHourlyRate(rate float64) bool {
	return rate > 0
}
