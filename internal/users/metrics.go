package users

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels recorded for registry operations.
const (
	OutcomeSuccess   = "success"
	OutcomeDuplicate = "duplicate"
	OutcomeNotFound  = "not_found"
	OutcomeEmpty     = "empty"
	OutcomeError     = "error"
)

// Metrics exposes Prometheus collectors for registry operations.
type Metrics struct {
	operations *prometheus.CounterVec
	registered prometheus.Gauge
}

// NewMetrics registers the registry metrics against the provided registerer.
// When the registerer is nil a private registry is used.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: operationsMetric,
		Help: "Registry operations partitioned by operation and outcome.",
	}, []string{"operation", "outcome"})
	registered := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chatci_registry_users",
		Help: "Number of users currently registered.",
	})
	registerer.MustRegister(operations, registered)
	return &Metrics{operations: operations, registered: registered}
}

// Observe counts one operation with the outcome derived from err.
func (m *Metrics) Observe(operation string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcomeOf(err)).Inc()
}

// SetRegistered records the current registry size.
func (m *Metrics) SetRegistered(n int) {
	if m == nil {
		return
	}
	m.registered.Set(float64(n))
}

// Operations returns the counter vector, mainly for inspection in tests.
func (m *Metrics) Operations() *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.operations
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrDuplicateUser):
		return OutcomeDuplicate
	case errors.Is(err, ErrUserNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrNoUsers):
		return OutcomeEmpty
	default:
		return OutcomeError
	}
}

const operationsMetric = "chatci_registry_operations_total"

// OperationCount is one gathered value of the operations counter.
type OperationCount struct {
	Operation string
	Outcome   string
	Count     float64
}

// Summarize gathers the operations counter from g, ordered by operation then
// outcome.
func Summarize(g prometheus.Gatherer) ([]OperationCount, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	var counts []OperationCount
	for _, family := range families {
		if family.GetName() != operationsMetric {
			continue
		}
		for _, metric := range family.GetMetric() {
			count := OperationCount{Count: metric.GetCounter().GetValue()}
			for _, label := range metric.GetLabel() {
				switch label.GetName() {
				case "operation":
					count.Operation = label.GetValue()
				case "outcome":
					count.Outcome = label.GetValue()
				}
			}
			counts = append(counts, count)
		}
	}
	return counts, nil
}

// LogSummary writes one log line per gathered operation count.
func LogSummary(ctx context.Context, logger *slog.Logger, g prometheus.Gatherer) {
	counts, err := Summarize(g)
	if err != nil {
		logger.WarnContext(ctx, "gather registry metrics", slog.Any("error", err))
		return
	}
	for _, c := range counts {
		logger.InfoContext(ctx, "registry operations",
			slog.String("operation", c.Operation),
			slog.String("outcome", c.Outcome),
			slog.Float64("count", c.Count),
		)
	}
}
