package entities

// AvailabilityWindow — повторяющееся недельное окно доступности райдера.
// DayOfWeek: 0=понедельник .. 6=воскресенье. Инвариант Start < End
// проверяется на границе сервиса до записи в хранилище.
type AvailabilityWindow struct {
	ID        int64
	RiderID   int64
	DayOfWeek int
	Start     TimeOfDay
	End       TimeOfDay
	Preferred bool
}

// Covers: окно полностью содержит интервал смены. Частичное перекрытие не
// считается — райдер, недоступный на часть смены, не кандидат на нее.
func (w AvailabilityWindow) Covers(start, end TimeOfDay) bool {
	return w.Start <= start && w.End >= end
}
