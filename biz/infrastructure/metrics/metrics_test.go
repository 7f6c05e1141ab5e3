package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAnalysisMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAnalysisMetrics(reg)

	m.ObserveAnalysis("crisis", []string{"crisis_intervention", "professional_referral"}, 0.001)
	m.ObserveAnalysis("low", []string{"general_emotional_support"}, 0.0002)
	m.ObserveAlert("email", nil)
	m.ObserveAlert("webhook", errors.New("timeout"))
	m.ObserveFallback("llm_error")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.analysesTotal.WithLabelValues("crisis")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.strategyTotal.WithLabelValues("crisis_intervention")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.alertsTotal.WithLabelValues("webhook", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbackTotal.WithLabelValues("llm_error")))
	assert.Equal(t, 3, testutil.CollectAndCount(m.strategyTotal))
}

func TestAnalysisMetrics_DefaultRegistry(t *testing.T) {
	m := NewAnalysisMetrics(nil)
	m.ObserveFallback("disabled")
	prometheus.Unregister(m.analysesTotal)
	prometheus.Unregister(m.strategyTotal)
	prometheus.Unregister(m.alertsTotal)
	prometheus.Unregister(m.fallbackTotal)
	prometheus.Unregister(m.analyzeLatency)
}

func TestAnalysisMetrics_NilSafe(t *testing.T) {
	var m *AnalysisMetrics
	m.ObserveAnalysis("low", []string{"general_emotional_support"}, 0.1)
	m.ObserveAlert("email", nil)
	m.ObserveFallback("disabled")
}
