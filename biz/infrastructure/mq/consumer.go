package mq

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-honey/biz/domain"
	"github.com/xh-polaris/psych-honey/biz/domain/model"
	"github.com/xh-polaris/psych-honey/biz/domain/model/gemini"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/mapper/history"
)

// HistoryConsumer 消费聊天记录并生成报表
type HistoryConsumer struct {
	rs     *domain.RedisHelper
	mapper history.IMongoMapper
	report model.ReportApp
	finish chan struct{}
}

// NewHistoryConsumer 创建一个消费者, report为空时只生成统计报告
func NewHistoryConsumer(rs *domain.RedisHelper, mapper history.IMongoMapper, report model.ReportApp) *HistoryConsumer {
	return &HistoryConsumer{
		rs:     rs,
		mapper: mapper,
		report: report,
		finish: make(chan struct{}, 1),
	}
}

// Consume 启动消费者, 阻塞直到收到退出信号
func Consume() {
	consumer := NewHistoryConsumer(domain.GetRedisHelper(), history.GetMongoMapper(), gemini.GetReportApp())
	consumer.Start()
}

// Start 开始消费
func (c *HistoryConsumer) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 启动消息处理
	gopool.CtxGo(ctx, func() {
		c.consume(ctx)
	})
	// 处理系统信号
	gopool.CtxGo(ctx, func() {
		c.osSignalHandler(ctx)
		c.finish <- struct{}{}
	})

	<-c.finish
}

// consume 消费信息
func (c *HistoryConsumer) consume(ctx context.Context) {
	ch, err := getConn().Channel()
	if err != nil {
		log.Error("get channel error: %v", err)
		return
	}
	defer func() { _ = ch.Close() }()
	if err = ch.Qos(1, 0, false); err != nil {
		log.Error("set qos error: %v", err)
		return
	}
	msgs, err := ch.Consume(consts.HistoryQueue, "history_consumer", false, false, false, false, nil)
	if err != nil {
		log.Error("get consume error: %v", err)
		return
	}

	for msg := range msgs {
		if err = c.process(ctx, msg.Body); err != nil {
			// 失败时拒绝并重试
			log.CtxError(ctx, "处理失败，消息重新入队: %v", err)
			if err = msg.Nack(false, true); err != nil {
				log.CtxError(ctx, "nack失败: %v", err)
			}
		} else if err = msg.Ack(false); err != nil {
			log.CtxError(ctx, "ack失败: %v", err)
		}
	}
}

// osSignalHandler 处理os信号
func (c *HistoryConsumer) osSignalHandler(ctx context.Context) {
	log.CtxInfo(ctx, "[osSignalHandler] start")
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	osSignal := <-ch
	log.CtxInfo(ctx, "[osSignalHandler] receive signal:[%v]", osSignal)
}

// process 实际消费逻辑
func (c *HistoryConsumer) process(ctx context.Context, body []byte) error {
	var m HistoryMessage
	if err := json.Unmarshal(body, &m); err != nil {
		// 格式错误的消息重试也无法处理, 直接丢弃
		log.CtxError(ctx, "invalid history message: %s", string(body))
		return nil
	}

	histories, err := c.rs.Load(m.SessionId)
	if err != nil {
		return err
	}
	if len(histories) == 0 {
		log.CtxInfo(ctx, "session %s has no dialogs, skip", m.SessionId)
		return nil
	}

	his := &history.History{
		SessionId:  m.SessionId,
		UserId:     m.UserId,
		Dialogs:    toDialogs(histories),
		StartTime:  time.Unix(m.Start, 0),
		EndTime:    time.Unix(m.End, 0),
		CreateTime: time.Now(),
	}
	his.Report = buildReport(histories)
	c.narrate(ctx, his)

	// 存储对话记录
	if err = c.mapper.Insert(ctx, his); err != nil {
		return err
	}
	// 从redis中删除
	return c.rs.Remove(m.SessionId)
}

// narrate 调用报告模型补充叙述部分, 失败时保留统计报告
func (c *HistoryConsumer) narrate(ctx context.Context, his *history.History) {
	if c.report == nil {
		return
	}
	r, err := c.report.Call(ctx, buildMsg(his))
	if err != nil {
		log.CtxError(ctx, "call report error: %v", err)
		return
	}
	his.Report.Keywords = r.Keywords
	his.Report.Content = r.Content
	if len(r.Suggestion) > 0 {
		his.Report.Suggestion = r.Suggestion
	}
}
