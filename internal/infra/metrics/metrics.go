package metrics

import "github.com/prometheus/client_golang/prometheus"

// Catalog — счётчики операций каталога материалов.
// Нулевой указатель допустим: методы ничего не делают.
type Catalog struct {
	saved         *prometheus.CounterVec
	rejected      *prometheus.CounterVec
	storeFailures *prometheus.CounterVec
	shortfalls    prometheus.Gauge
	purchaseCost  prometheus.Gauge
}

func NewCatalog(reg prometheus.Registerer) *Catalog {
	c := &Catalog{
		saved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_materials_saved_total",
				Help: "Materials persisted, by operation.",
			},
			[]string{"op"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_validation_failures_total",
				Help: "Rejected material forms, by failing field.",
			},
			[]string{"field"},
		),
		storeFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_store_failures_total",
				Help: "Catalog store errors, by operation.",
			},
			[]string{"op"},
		),
		shortfalls: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_materials_below_minimum",
			Help: "Materials below their reorder threshold at the last listing.",
		}),
		purchaseCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_replenishment_cost",
			Help: "Total purchase cost to clear all shortfalls at the last listing.",
		}),
	}
	reg.MustRegister(c.saved, c.rejected, c.storeFailures, c.shortfalls, c.purchaseCost)
	return c
}

func (c *Catalog) Saved(op string) {
	if c == nil {
		return
	}
	c.saved.WithLabelValues(op).Inc()
}

func (c *Catalog) Rejected(field string) {
	if c == nil {
		return
	}
	c.rejected.WithLabelValues(field).Inc()
}

func (c *Catalog) StoreFailed(op string) {
	if c == nil {
		return
	}
	c.storeFailures.WithLabelValues(op).Inc()
}

// Listed фиксирует сводку последнего списка материалов.
func (c *Catalog) Listed(belowMinimum int, totalCost float64) {
	if c == nil {
		return
	}
	c.shortfalls.Set(float64(belowMinimum))
	c.purchaseCost.Set(totalCost)
}
