// Package metrics はストア呼び出しと学習操作の Prometheus メトリクスを定義します。
// nil の *Metrics は何もしない。
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "study_sheet"

type Metrics struct {
	storeOps     *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
	draws        *prometheus.CounterVec
	marks        *prometheus.CounterVec
	imageUploads *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		storeOps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Record store calls by operation and result.",
		}, []string{"op", "result"}),
		storeLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Record store call latency.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"op"}),
		draws: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_drawn_total",
			Help:      "Questions drawn by selection mode.",
		}, []string{"mode"}),
		marks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_marked_total",
			Help:      "Answers marked by result.",
		}, []string{"result"}),
		imageUploads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_uploads_total",
			Help:      "Image host uploads by result.",
		}, []string{"result"}),
	}
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveStore はストア呼び出し1回分を記録します
func (m *Metrics) ObserveStore(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.storeOps.WithLabelValues(op, resultLabel(err)).Inc()
	m.storeLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncDraw(mode string) {
	if m == nil {
		return
	}
	m.draws.WithLabelValues(mode).Inc()
}

func (m *Metrics) IncMark(correct bool) {
	if m == nil {
		return
	}
	result := "incorrect"
	if correct {
		result = "correct"
	}
	m.marks.WithLabelValues(result).Inc()
}

func (m *Metrics) IncImageUpload(err error) {
	if m == nil {
		return
	}
	m.imageUploads.WithLabelValues(resultLabel(err)).Inc()
}
