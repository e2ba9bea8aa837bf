package entities

import "time"

// Assignment — связь смены и райдера, один к одному со сменой.
// Создается только движком мэтчинга; удаляется при отказе или таймауте,
// при этом смена в тот же момент возвращается в open.
type Assignment struct {
	ID                  int64
	ShiftID             int64
	RiderID             int64
	AssignedAt          time.Time
	ConfirmedByRider    bool
	ConfirmedByPizzeria bool
}

func (a Assignment) FullyConfirmed() bool {
	return a.ConfirmedByRider && a.ConfirmedByPizzeria
}

// Booking — активное назначение райдера вместе с интервалом его смены.
// Используется ConflictGuard-проверкой и недельным тиром скоринга.
type Booking struct {
	AssignmentID int64
	ShiftID      int64
	Date         time.Time
	Start        TimeOfDay
	End          TimeOfDay
}

// SameISOWeek: обе даты в одной ISO-неделе (для распределения нагрузки).
func (b Booking) SameISOWeek(date time.Time) bool {
	by, bw := b.Date.ISOWeek()
	dy, dw := date.ISOWeek()
	return by == dy && bw == dw
}
