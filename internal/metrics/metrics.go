package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// デッキ生成の計測値です。
var (
	// OutlineRequestsTotal は生成元 (model / fallback) ごとのアウトライン数です。
	OutlineRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deck",
			Subsystem: "outline",
			Name:      "requests_total",
			Help:      "Total number of generated outlines by source",
		},
		[]string{"source"},
	)

	// OutlineFailuresTotal はモデル経由の生成が失敗した工程ごとの件数です。
	OutlineFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deck",
			Subsystem: "outline",
			Name:      "failures_total",
			Help:      "Total number of model outline failures by stage",
		},
		[]string{"stage"},
	)

	SlidesRenderedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "deck",
			Subsystem: "render",
			Name:      "slides_total",
			Help:      "Total number of rendered slide documents",
		},
	)

	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deck",
			Subsystem: "export",
			Name:      "total",
			Help:      "Total number of deck exports by status",
		},
		[]string{"status"},
	)

	ExportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "deck",
			Subsystem: "export",
			Name:      "duration_seconds",
			Help:      "Deck export duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
	)
)

// OutlineObserver はアウトライン生成の結果をカウンターに記録します。
type OutlineObserver struct{}

func (OutlineObserver) OutlineGenerated(source string) {
	OutlineRequestsTotal.WithLabelValues(source).Inc()
}

func (OutlineObserver) OutlineFailed(stage string) {
	OutlineFailuresTotal.WithLabelValues(stage).Inc()
}

// RecordRender は描画したスライド数を記録します。
func RecordRender(slides int) {
	SlidesRenderedTotal.Add(float64(slides))
}

// RecordExport はエクスポートの結果と所要時間を記録します。
func RecordExport(status string, durationSec float64) {
	ExportsTotal.WithLabelValues(status).Inc()
	ExportDuration.Observe(durationSec)
}
