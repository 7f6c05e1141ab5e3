package alert

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/config"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/metrics"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/mq"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/util"
)

// excerptLimit 预警中携带的消息摘录长度
const excerptLimit = 200

const (
	channelMq      = "mq"
	channelEmail   = "email"
	channelWebhook = "webhook"
)

// Alert 危机预警
type Alert struct {
	SessionId string   `json:"sessionId"`
	UserId    string   `json:"userId"`
	Level     string   `json:"level"`
	Emotion   string   `json:"emotion"`
	Topics    []string `json:"topics"`
	Excerpt   string   `json:"excerpt"`
	Time      int64    `json:"time"`
}

// NewAlert 构造预警, 消息只保留摘录
func NewAlert(sessionId, userId, level, emotion string, topics []string, msg string) *Alert {
	return &Alert{
		SessionId: sessionId,
		UserId:    userId,
		Level:     level,
		Emotion:   emotion,
		Topics:    topics,
		Excerpt:   excerpt(msg, excerptLimit),
		Time:      time.Now().Unix(),
	}
}

// Publisher 预警消息的发布方
type Publisher interface {
	PublishAlert(ctx context.Context, alert any) error
}

// Alerter 将危机预警同时发送到消息队列, 值班邮箱和webhook
type Alerter struct {
	publisher Publisher
	smtp      *config.SMTP
	email     bool
	webhook   string
	client    *util.HttpClient
	metrics   *metrics.AnalysisMetrics
}

var (
	alerter     *Alerter
	alerterOnce sync.Once
)

func NewAlerter(c *config.Config, m *metrics.AnalysisMetrics) *Alerter {
	alerterOnce.Do(func() {
		alerter = &Alerter{
			publisher: mq.GetHistoryProducer(),
			smtp:      &c.SMTP,
			email:     c.Alert.Email && c.SMTP.Host != "",
			webhook:   c.Alert.Webhook,
			client:    util.GetHttpClient(),
			metrics:   m,
		}
	})
	return alerter
}

// Notify 异步发送预警, 不阻塞回复
func (a *Alerter) Notify(ctx context.Context, alert *Alert) {
	if a == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	gopool.CtxGo(ctx, func() {
		a.send(ctx, alert)
	})
}

// send 依次发送到各渠道, 单个渠道失败不影响其他渠道
func (a *Alerter) send(ctx context.Context, alert *Alert) {
	if a.publisher != nil {
		err := a.publisher.PublishAlert(ctx, alert)
		a.observe(ctx, channelMq, alert, err)
	}
	if a.email {
		err := util.AlertEMail(a.smtp, "预警信息", emailContent(alert))
		a.observe(ctx, channelEmail, alert, err)
	}
	if a.webhook != "" {
		_, err := a.client.Req(ctx, consts.Post, a.webhook, nil, alert)
		a.observe(ctx, channelWebhook, alert, err)
	}
}

func (a *Alerter) observe(ctx context.Context, channel string, alert *Alert, err error) {
	a.metrics.ObserveAlert(channel, err)
	if err != nil {
		log.CtxError(ctx, "[alert] %s failed, session=%s, err=%v", channel, alert.SessionId, err)
		return
	}
	log.CtxInfo(ctx, "[alert] %s sent, session=%s", channel, alert.SessionId)
}

func emailContent(alert *Alert) string {
	return fmt.Sprintf("检测到一位用户处于危机状态，请立即前往处理\r\n"+
		"会话: %s\r\n用户: %s\r\n等级: %s\r\n话题: %s\r\n时间: %s\r\n",
		alert.SessionId, alert.UserId, alert.Level, strings.Join(alert.Topics, ", "),
		time.Unix(alert.Time, 0).Format(time.DateTime))
}

// excerpt 按字符截断
func excerpt(s string, limit int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= limit {
		return string(r)
	}
	return string(r[:limit]) + "..."
}
