package rider

import (
	"strings"

	"ridermatch/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidTransport(transport string) bool {
	switch transport {
	case "bicycle", "scooter", "car":
		return true
	default:
		return false
	}
}

func isValidRating(rating float64) bool {
	return rating >= entities.MinRating && rating <= entities.MaxRating
}

func isValidDayOfWeek(day int) bool {
	return day >= 0 && day <= 6
}

func isValidWindow(start, end entities.TimeOfDay) bool {
	return start.Valid() && end.Valid() && start < end
}
