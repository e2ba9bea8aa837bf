package clock

import "time"

// System — источник времени по умолчанию. Сервисы принимают Now() через
// узкий интерфейс, чтобы тесты могли зафиксировать время.
type System struct{}

func New() *System {
	return &System{}
}

func (*System) Now() time.Time {
	return time.Now()
}
