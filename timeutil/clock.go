package timeutil

import (
	"sync"
	"time"
)

// Clock — абстракция источника времени. InCurrentPeriod читает
// "сейчас" ровно один раз за вызов через Clock, поэтому в тестах
// время можно заморозить.
type Clock interface {
	// Now возвращает текущее время (ожидаем UTC).
	Now() time.Time
	// Since — разница относительно Clock.Now(), а не time.Since.
	Since(t time.Time) time.Duration
}

// UTCClock — системные часы в UTC.
type UTCClock struct{}

func (UTCClock) Now() time.Time                    { return time.Now().UTC() }
func (c UTCClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

// OffsetClock — часы с постоянным смещением относительно Base.
// Полезно для корректировок/NTP-оффсетов или симуляций.
type OffsetClock struct {
	Base   Clock
	Offset time.Duration
}

func (c OffsetClock) Now() time.Time {
	base := c.Base
	if base == nil {
		base = Default
	}
	return base.Now().Add(c.Offset)
}

func (c OffsetClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

// FrozenClock — фиксированное время с возможностью ручного сдвига.
// Удобно для unit-тестов бизнес-логики.
type FrozenClock struct {
	mu sync.RWMutex
	t  time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{t: t}
}

func (c *FrozenClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

func (c *FrozenClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

func (c *FrozenClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// Default — глобальные часы по умолчанию (UTC).
var Default Clock = UTCClock{}

// Now — алиас для Default.Now() (UTC).
func Now() time.Time { return Default.Now() }
