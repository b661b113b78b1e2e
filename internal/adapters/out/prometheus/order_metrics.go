// Package prometheus publishes order workflow metrics.
package prometheus

import (
	"strconv"

	"pizzastore/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pizzastore"

// OrderMetrics implements ports.OrderMetrics.
type OrderMetrics struct {
	placed      *prometheus.CounterVec
	idConflicts prometheus.Counter
	transitions *prometheus.CounterVec
	byStatus    *prometheus.GaugeVec
}

// NewOrderMetrics creates the collectors and registers them with reg.
func NewOrderMetrics(reg prometheus.Registerer) (*OrderMetrics, error) {
	m := &OrderMetrics{
		placed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Orders committed, by store.",
		}, []string{"store_id"}),
		idConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "id_conflicts_total",
			Help:      "Placements retried because a concurrent placement took the order id.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "status_transitions_total",
			Help:      "Committed status transitions.",
		}, []string{"from", "to"}),
		byStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "by_status",
			Help:      "Orders currently in each status.",
		}, []string{"status"}),
	}

	for _, c := range []prometheus.Collector{m.placed, m.idConflicts, m.transitions, m.byStatus} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *OrderMetrics) OrderPlaced(storeID int64) {
	m.placed.WithLabelValues(strconv.FormatInt(storeID, 10)).Inc()
}

func (m *OrderMetrics) OrderIDConflict() {
	m.idConflicts.Inc()
}

func (m *OrderMetrics) StatusTransitioned(from, to order.Status) {
	m.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

// SetOrdersByStatus replaces the gauge values. Statuses missing from counts
// are set to zero.
func (m *OrderMetrics) SetOrdersByStatus(counts map[order.Status]int64) {
	for _, status := range order.Statuses() {
		m.byStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}
}
