package registry

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	contexts    prometheus.Gauge
	created     prometheus.Counter
	destroyed   prometheus.Counter
	rejected    *prometheus.CounterVec
	evaluations *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		contexts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "noisefield",
			Subsystem: "registry",
			Name:      "contexts",
			Help:      "Число живых контекстов шума.",
		}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "noisefield",
			Subsystem: "registry",
			Name:      "created_total",
			Help:      "Всего созданных контекстов.",
		}),
		destroyed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "noisefield",
			Subsystem: "registry",
			Name:      "destroyed_total",
			Help:      "Всего освобождённых контекстов.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "noisefield",
			Subsystem: "registry",
			Name:      "rejected_total",
			Help:      "Отказы в создании контекста по причинам.",
		}, []string{"reason"}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "noisefield",
			Subsystem: "registry",
			Name:      "evaluations_total",
			Help:      "Вычисления шума по дескриптору, по размерности.",
		}, []string{"dims"}),
	}

	reg.MustRegister(m.contexts, m.created, m.destroyed, m.rejected, m.evaluations)
	return m
}
