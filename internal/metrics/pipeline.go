package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"MediaMap/internal/ports"
)

const namespace = "mediamap"

var (
	articlesProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_processed_total",
		Help:      "Articles filtered and scored by the pipeline",
	})

	articlesRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_rejected_total",
		Help:      "Articles rejected as malformed",
	})

	tokensDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "noise_tokens_dropped_total",
			Help:      "Noise tokens removed by the filter",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(articlesProcessed, articlesRejected, tokensDropped)
}

// Pipeline records curation counters in the default Prometheus registry.
type Pipeline struct{}

var _ ports.PipelineMetrics = Pipeline{}

// ArticleProcessed counts one successfully scored article.
func (Pipeline) ArticleProcessed() { articlesProcessed.Inc() }

// ArticleRejected counts one malformed article.
func (Pipeline) ArticleRejected() { articlesRejected.Inc() }

// TokensDropped counts n noise tokens of the given kind (entities, concepts, triples).
func (Pipeline) TokensDropped(kind string, n int) {
	if n <= 0 {
		return
	}
	tokensDropped.WithLabelValues(kind).Add(float64(n))
}
