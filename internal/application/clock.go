package application

import "time"

// DateLayout is the calendar-day key format for persisted records.
const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
