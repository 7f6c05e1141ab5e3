package adaptor

import (
	"context"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Namespace: "honey", Name: "served_total", Help: "test"})
	require.NoError(t, reg.Register(counter))
	counter.Inc()

	c := app.NewContext(0)
	c.Request.SetRequestURI("http://localhost/metrics")
	c.Request.Header.SetMethod(hertz.MethodGet)

	HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))(context.Background(), c)

	assert.Equal(t, hertz.StatusOK, c.Response.StatusCode())
	assert.Contains(t, string(c.Response.Body()), "honey_served_total 1")
}
