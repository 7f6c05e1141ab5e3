package alert

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xh-polaris/psych-honey/biz/infrastructure/metrics"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/util"
)

type fakePublisher struct {
	mu     sync.Mutex
	alerts []any
	err    error
}

func (p *fakePublisher) PublishAlert(_ context.Context, alert any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts = append(p.alerts, alert)
	return p.err
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.alerts)
}

func TestAlerter_SendAllChannels(t *testing.T) {
	var got Alert
	var hits int
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		hits++
		_ = json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	pub := &fakePublisher{err: errors.New("broker down")}
	a := &Alerter{
		publisher: pub,
		webhook:   srv.URL,
		client:    util.NewHttpClient(),
		metrics:   metrics.NewAnalysisMetrics(prometheus.NewRegistry()),
	}

	alert := NewAlert("s-1", "u-1", "crisis", "neutral", []string{"depression_suicidal_thoughts"}, "I want to kill myself")
	a.send(context.Background(), alert)

	// 消息队列失败不影响webhook
	assert.Equal(t, 1, pub.count())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, hits)
	assert.Equal(t, "s-1", got.SessionId)
	assert.Equal(t, "crisis", got.Level)
}

func TestAlerter_NotifyIsAsync(t *testing.T) {
	pub := &fakePublisher{}
	a := &Alerter{publisher: pub}

	ctx, cancel := context.WithCancel(context.Background())
	a.Notify(ctx, NewAlert("s-2", "u-2", "crisis", "sad", nil, "give up"))
	cancel()

	assert.Eventually(t, func() bool { return pub.count() == 1 }, time.Second, 10*time.Millisecond)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "abc", excerpt("  abc ", 10))
	long := strings.Repeat("दु", 300)
	out := excerpt(long, excerptLimit)
	assert.True(t, strings.HasSuffix(out, "..."))
	assert.Len(t, []rune(out), excerptLimit+3)
}

func TestEmailContent(t *testing.T) {
	alert := NewAlert("s-3", "u-3", "crisis", "sad", []string{"a", "b"}, "msg")
	content := emailContent(alert)
	require.Contains(t, content, "s-3")
	assert.Contains(t, content, "a, b")
	assert.NotContains(t, content, "msg")
}
