package metrics

import (
	"fsanano/go-shop/internal/model"

	"github.com/prometheus/client_golang/prometheus"
)

// PurchaseMetrics counts purchase attempts by outcome.
type PurchaseMetrics struct {
	Purchases *prometheus.CounterVec
}

func NewPurchaseMetrics(reg prometheus.Registerer) *PurchaseMetrics {
	purchases := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "goshop",
		Name:      "purchases_total",
		Help:      "Total number of purchase attempts by status.",
	}, []string{"status"})

	reg.MustRegister(purchases)
	return &PurchaseMetrics{Purchases: purchases}
}

func (m *PurchaseMetrics) Observe(status model.PurchaseStatus) {
	m.Purchases.WithLabelValues(status.String()).Inc()
}
