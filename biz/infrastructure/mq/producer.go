package mq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
)

var (
	producer     *HistoryProducer
	producerOnce sync.Once
)

// HistoryMessage 对话结束消息
type HistoryMessage struct {
	SessionId string `json:"sessionId"`
	UserId    string `json:"userId"`
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
}

// HistoryProducer 历史记录与危机预警的生产者
type HistoryProducer struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// GetHistoryProducer 获取生产者单例
func GetHistoryProducer() *HistoryProducer {
	producerOnce.Do(func() {
		producer = &HistoryProducer{}
	})
	return producer
}

// ensure 获取可用的channel, 连接重建后重新创建
func (p *HistoryProducer) ensure() (*amqp.Channel, error) {
	c := getConn()
	if p.channel != nil && p.conn == c && !p.channel.IsClosed() {
		return p.channel, nil
	}
	ch, err := c.Channel()
	if err != nil {
		return nil, err
	}
	p.conn, p.channel = c, ch
	return ch, nil
}

// Produce 创建历史记录消息
func (p *HistoryProducer) Produce(ctx context.Context, sessionId, userId string, start, end time.Time) error {
	return p.publish(ctx, consts.HistoryExchange, consts.HistoryRoutingKey, &HistoryMessage{
		SessionId: sessionId,
		UserId:    userId,
		Start:     start.Unix(),
		End:       end.Unix(),
	})
}

// PublishAlert 发布危机预警
func (p *HistoryProducer) PublishAlert(ctx context.Context, alert any) error {
	return p.publish(ctx, consts.AlertExchange, consts.AlertRoutingKey, alert)
}

// publish 发布持久化消息
func (p *HistoryProducer) publish(ctx context.Context, exchange, key string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	ch, err := p.ensure()
	if err != nil {
		return err
	}
	return ch.PublishWithContext(ctx, exchange, key,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    time.Now(),
			Body:         body,
		})
}
