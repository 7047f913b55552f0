package timeutil

import (
	"time"

	"github.com/vortex-fintech/periods/errors"
)

// Period — гранулярность повторения. Закрытое множество: любое другое
// значение — ошибка вызывающей стороны (InvalidArgument).
type Period string

const (
	Week    Period = "week"
	Month   Period = "month"
	Quarter Period = "quarter"
)

// Periods — все допустимые значения.
var Periods = []Period{Week, Month, Quarter}

func (p Period) Valid() bool {
	switch p {
	case Week, Month, Quarter:
		return true
	}
	return false
}

// Start возвращает начало периода p, содержащего t (в зоне t).
func (p Period) Start(t time.Time) (time.Time, error) {
	switch p {
	case Week:
		return StartOfWeek(t), nil
	case Month:
		return StartOfMonth(t), nil
	case Quarter:
		return StartOfQuarter(t), nil
	default:
		return time.Time{}, errors.UnsupportedError("period", string(p))
	}
}

// InCurrentPeriod возвращает true, если t строго позже начала текущего
// периода p — периода, содержащего clock.Now().
//
// Это history-check: t в будущем всегда считается "внутри" текущего
// периода. Граница строгая: t, равный началу периода, ещё НЕ внутри.
// nil clock означает Default.
func InCurrentPeriod(clock Clock, t time.Time, p Period) (bool, error) {
	if clock == nil {
		clock = Default
	}
	now := clock.Now().In(t.Location())
	start, err := p.Start(now)
	if err != nil {
		return false, err
	}
	return t.After(start), nil
}
