package confirmation_deadline

import (
	"time"
)

// DeadlineFactory считает дедлайн подтверждения назначения из TTL,
// заданного конфигурацией.
type DeadlineFactory struct {
	ttl time.Duration
}

func New(ttl time.Duration) *DeadlineFactory {
	return &DeadlineFactory{ttl: ttl}
}

// ExpiryCutoff возвращает момент, раньше которого неподтвержденное назначение
// считается просроченным: assigned_at < cutoff => назначение снимается.
func (f *DeadlineFactory) ExpiryCutoff(now time.Time) time.Time {
	return now.Add(-f.ttl)
}
