package metrics

import (
	"testing"

	"fsanano/go-shop/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPurchaseMetrics_Observe(t *testing.T) {
	m := NewPurchaseMetrics(prometheus.NewRegistry())

	m.Observe(model.StatusOK)
	m.Observe(model.StatusOK)
	m.Observe(model.StatusUnknownItem)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Purchases.WithLabelValues("OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Purchases.WithLabelValues("UNKNOWN_ITEM")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Purchases.WithLabelValues("USER_HAS_LOW_BALANCE")))
}
