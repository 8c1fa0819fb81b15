package tiles

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	served         *prometheus.CounterVec
	corrupt        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		served: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "noisefield",
			Subsystem: "tiles",
			Name:      "served_total",
			Help:      "Отданные тайлы по источнику (cache, store, render).",
		}, []string{"source"}),
		corrupt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "noisefield",
			Subsystem: "tiles",
			Name:      "corrupt_total",
			Help:      "Повреждённые записи тайлов по уровню хранения.",
		}, []string{"source"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "noisefield",
			Subsystem: "tiles",
			Name:      "render_duration_seconds",
			Help:      "Время растеризации и кодирования тайла.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"kind"}),
	}

	reg.MustRegister(m.served, m.corrupt, m.renderDuration)
	return m
}
