package metrics

import "github.com/prometheus/client_golang/prometheus"

// AnalysisMetrics 消息分析与回复相关的指标
type AnalysisMetrics struct {
	analysesTotal  *prometheus.CounterVec
	strategyTotal  *prometheus.CounterVec
	alertsTotal    *prometheus.CounterVec
	fallbackTotal  *prometheus.CounterVec
	analyzeLatency prometheus.Histogram
}

func NewAnalysisMetrics(reg prometheus.Registerer) *AnalysisMetrics {
	m := &AnalysisMetrics{
		analysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "honey",
			Subsystem: "analysis",
			Name:      "messages_total",
			Help:      "Total analysed messages by severity level",
		}, []string{"level"}),
		strategyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "honey",
			Subsystem: "analysis",
			Name:      "strategy_total",
			Help:      "Total selected response strategies",
		}, []string{"strategy"}),
		alertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "honey",
			Subsystem: "alert",
			Name:      "crisis_total",
			Help:      "Total crisis alerts by channel and status",
		}, []string{"channel", "status"}),
		fallbackTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "honey",
			Subsystem: "chat",
			Name:      "fallback_total",
			Help:      "Total replies served from the reply book",
		}, []string{"reason"}),
		analyzeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "honey",
			Subsystem: "analysis",
			Name:      "latency_seconds",
			Help:      "Latency of analysing one message",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.analysesTotal, m.strategyTotal, m.alertsTotal, m.fallbackTotal, m.analyzeLatency)
	return m
}

// ObserveAnalysis 记录一次分析的等级, 策略与耗时
func (m *AnalysisMetrics) ObserveAnalysis(level string, strategies []string, seconds float64) {
	if m == nil {
		return
	}
	m.analysesTotal.WithLabelValues(level).Inc()
	for _, s := range strategies {
		m.strategyTotal.WithLabelValues(s).Inc()
	}
	m.analyzeLatency.Observe(seconds)
}

func (m *AnalysisMetrics) ObserveAlert(channel string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.alertsTotal.WithLabelValues(channel, status).Inc()
}

func (m *AnalysisMetrics) ObserveFallback(reason string) {
	if m == nil {
		return
	}
	m.fallbackTotal.WithLabelValues(reason).Inc()
}
