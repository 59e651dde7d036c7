package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics counts order submissions by outcome so the local
// fallback rate is visible without log scraping.
type CheckoutMetrics struct {
	orders *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout counters on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_orders_total",
		Help: "Submitted orders by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(orders)
	return &CheckoutMetrics{orders: orders}
}

// IncOrder increments the counter for the given outcome label.
func (c *CheckoutMetrics) IncOrder(outcome string) {
	if c == nil || c.orders == nil {
		return
	}
	c.orders.WithLabelValues(normalizeLabel(outcome)).Inc()
}
