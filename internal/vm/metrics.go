package vm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/eth2030/ewasm-evm/internal/u256"
)

// Metrics exposes interpreter-level counters via promauto, the
// instrumentation side of the prometheus/client_golang dependency the wider
// pack already carries (chaos-utils wires the query side of the same
// library against a running Prometheus server; here the interpreter is the
// thing being measured instead of the thing doing the measuring).
type Metrics struct {
	StepsTotal  prometheus.Counter
	ErrorsTotal *prometheus.CounterVec
}

// NewMetrics registers interpreter counters against reg. Passing a fresh
// prometheus.NewRegistry() keeps test runs isolated from the global
// registry; the CLI registers against prometheus.DefaultRegisterer so
// promhttp.Handler() can serve them.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		StepsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "ewasmvm_steps_total",
			Help: "Total number of opcodes executed across all runs.",
		}),
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ewasmvm_errors_total",
			Help: "Total number of runs that ended in each error kind.",
		}, []string{"kind"}),
	}
}

// Tracer adapts Metrics into a StepTracer that just counts steps; wire it
// into Config.Tracer (composing with any caller-supplied tracer) to get
// step counts for free.
func (m *Metrics) Tracer() StepTracer {
	return func(pc int, op OpCode, stack []u256.Word, memLen int) {
		m.StepsTotal.Inc()
	}
}

// RecordOutcome increments the error counter for the given error, using
// "ok" as the kind when err is nil.
func (m *Metrics) RecordOutcome(err error) {
	kind := "ok"
	if err != nil {
		kind = err.Error()
	}
	m.ErrorsTotal.WithLabelValues(kind).Inc()
}
