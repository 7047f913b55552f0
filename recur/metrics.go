package recur

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type checkerMetrics struct {
	checks *prometheus.CounterVec
}

func newCheckerMetrics() *checkerMetrics {
	return &checkerMetrics{
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "periods",
			Subsystem: "recur",
			Name:      "checks_total",
			Help:      "Recurrence due-checks by period granularity and outcome.",
		}, []string{"period", "outcome"}),
	}
}

func (m *checkerMetrics) register(reg prometheus.Registerer) {
	if err := reg.Register(m.checks); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			// Уже зарегистрирован (два Checker на один реестр) — переиспользуем.
			m.checks = are.ExistingCollector.(*prometheus.CounterVec)
		}
	}
}
