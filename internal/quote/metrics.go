package quote

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	QuotesTotal  prometheus.Counter
	DiscountRate prometheus.Histogram
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		QuotesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quotes_created_total",
			Help: "Quotes created",
		}),
		DiscountRate: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quote_discount_rate",
			Help:    "Discount rate applied per quote",
			Buckets: []float64{0, 0.05, 0.10, 0.15, 0.25, 0.5, 1},
		}),
	}

	reg.MustRegister(m.QuotesTotal, m.DiscountRate)
	return m
}
