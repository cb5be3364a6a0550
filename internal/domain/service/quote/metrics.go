package quote

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
)

const (
	resultPriced   = "priced"
	resultUnpriced = "unpriced"
)

//nolint:gochecknoglobals
var (
	priceResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "printswift",
		Name:      "price_resolutions_total",
		Help:      "Catalog price resolutions by outcome.",
	}, []string{"result", "reason"})

	quotesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "printswift",
		Name:      "quotes_created_total",
		Help:      "Quotes persisted.",
	})

	quoteTotals = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "printswift",
		Name:      "quote_total_amount",
		Help:      "Grand total of created quotes.",
		Buckets:   prometheus.ExponentialBuckets(1000, 4, 10),
	})
)

func observeResolution(price entity.Price) {
	if price.IsPriced() {
		priceResolutions.WithLabelValues(resultPriced, "").Inc()
		return
	}

	priceResolutions.WithLabelValues(resultUnpriced, price.Reason().String()).Inc()
}

func observeCreated(summary entity.QuoteSummary) {
	quotesCreated.Inc()
	quoteTotals.Observe(summary.Total)
}
