// Package metrics expone contadores Prometheus de la operación del almacén.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los contadores registrados de la app.
type Metrics struct {
	TransactionsTotal *prometheus.CounterVec
	ItemsTotal        prometheus.Counter
	LoginsTotal       *prometheus.CounterVec
}

// New registra las métricas en el registro global.
func New() *Metrics {
	return &Metrics{
		TransactionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "almacen_transactions_total",
			Help: "Transacciones de almacén registradas, por tipo.",
		}, []string{"type"}),
		ItemsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "almacen_transaction_items_total",
			Help: "Items registrados en el libro de transacciones.",
		}),
		LoginsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "almacen_logins_total",
			Help: "Intentos de login, por resultado (ok | failed).",
		}, []string{"result"}),
	}
}

// RecordTransaction cuenta una transacción confirmada y sus items.
func (m *Metrics) RecordTransaction(txType string, items int) {
	if m == nil {
		return
	}
	m.TransactionsTotal.WithLabelValues(txType).Inc()
	m.ItemsTotal.Add(float64(items))
}

// RecordLogin cuenta un intento de login.
func (m *Metrics) RecordLogin(ok bool) {
	if m == nil {
		return
	}
	result := "failed"
	if ok {
		result = "ok"
	}
	m.LoginsTotal.WithLabelValues(result).Inc()
}
