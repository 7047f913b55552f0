// Package recur answers whether a recurring business event (weekly,
// monthly or quarterly) is due again: an event is due when it has not
// yet fired inside the current calendar period.
//
// The package keeps no state. Callers own the "last fired" timestamp
// and pass it on every check.
package recur

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/periods/errors"
	"github.com/vortex-fintech/periods/logger"
	"github.com/vortex-fintech/periods/timeutil"
	"github.com/vortex-fintech/periods/validator"
)

// Rule описывает повторяющееся бизнес-событие.
type Rule struct {
	Name   string          `validate:"required,max=128"`
	Period timeutil.Period `validate:"required,oneof=week month quarter"`
}

// Checker — проверка "пора ли снова" для Rule. Безопасен для
// конкурентного использования: единственное чтение окружения —
// один Clock.Now() на вызов.
type Checker struct {
	clock   timeutil.Clock
	log     logger.LoggerInterface
	metrics *checkerMetrics
}

type Option func(*Checker)

// WithClock — источник "сейчас" (для тестов — FrozenClock).
func WithClock(c timeutil.Clock) Option {
	return func(ch *Checker) {
		if c != nil {
			ch.clock = c
		}
	}
}

// WithLogger — логгер решений (по умолчанию — Nop).
func WithLogger(l logger.LoggerInterface) Option {
	return func(ch *Checker) {
		if l != nil {
			ch.log = l
		}
	}
}

// WithRegisterer регистрирует метрики Checker в реестре потребителя.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(ch *Checker) {
		if reg != nil {
			ch.metrics.register(reg)
		}
	}
}

func New(opts ...Option) *Checker {
	ch := &Checker{
		clock:   timeutil.Default,
		log:     logger.Nop(),
		metrics: newCheckerMetrics(),
	}
	for _, o := range opts {
		o(ch)
	}
	return ch
}

// Due reports whether rule should fire again.
//
// A zero lastFired means the event has never fired and is always due.
// Otherwise the event is due exactly when lastFired does NOT fall in
// the current rule.Period, evaluated in lastFired's own time zone.
// An invalid rule yields an InvalidArgument ErrorResponse.
func (c *Checker) Due(rule Rule, lastFired time.Time) (bool, error) {
	if fields := validator.Validate(rule); fields != nil {
		return false, errors.ValidationError(fields)
	}

	if lastFired.IsZero() {
		c.observe(rule, true)
		return true, nil
	}

	in, err := timeutil.InCurrentPeriod(c.clock, lastFired, rule.Period)
	if err != nil {
		return false, err
	}

	due := !in
	c.observe(rule, due)
	c.log.Debugw("recurrence check",
		"rule", rule.Name,
		"period", string(rule.Period),
		"last_fired", lastFired,
		"due", due,
	)
	return due, nil
}

func (c *Checker) observe(rule Rule, due bool) {
	outcome := "not_due"
	if due {
		outcome = "due"
	}
	c.metrics.checks.WithLabelValues(string(rule.Period), outcome).Inc()
}
