package entities

import (
	"fmt"
	"time"
)

// TimeOfDay — минуты от полуночи. Смены и окна доступности живут в рамках
// одного дня, поэтому интервальная арифметика на минутах проще и надежнее,
// чем time.Time без даты.
type TimeOfDay int

const MinutesPerDay = 24 * 60

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay разбирает строку формата "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return NewTimeOfDay(parsed.Hour(), parsed.Minute()), nil
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и
// [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}

// DayOfWeekOf приводит time.Weekday к нумерации 0=понедельник .. 6=воскресенье,
// в которой хранятся окна доступности.
func DayOfWeekOf(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
