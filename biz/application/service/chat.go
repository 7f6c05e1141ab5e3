package service

import (
	"context"

	"github.com/google/wire"
	"github.com/hertz-contrib/websocket"
	"github.com/xh-polaris/psych-honey/biz/domain"
	"github.com/xh-polaris/psych-honey/biz/domain/alert"
	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
	"github.com/xh-polaris/psych-honey/biz/domain/chat"
	"github.com/xh-polaris/psych-honey/biz/domain/model"
	"github.com/xh-polaris/psych-honey/biz/domain/reply"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/config"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/metrics"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/mq"
)

type IChatService interface {
	Handle(ctx context.Context, conn *websocket.Conn, userId string)
}

type ChatService struct {
	Config      *config.Config
	RedisHelper *domain.RedisHelper
	Analyzer    *analysis.Analyzer
	ChatApp     model.ChatApp
	Book        *reply.Book
	Alerter     *alert.Alerter
	Metrics     *metrics.AnalysisMetrics
}

var ChatServiceSet = wire.NewSet(
	wire.Struct(new(ChatService), "*"),
	wire.Bind(new(IChatService), new(*ChatService)),
)

// Handle 处理一轮长对话, 连接断开或收到结束命令时返回
func (s *ChatService) Handle(ctx context.Context, conn *websocket.Conn, userId string) {
	engine := chat.NewEngine(ctx, domain.NewWsHelper(conn), userId, &chat.Deps{
		Store:    s.RedisHelper,
		Analyzer: s.Analyzer,
		ChatApp:  s.ChatApp,
		Book:     s.Book,
		Notifier: s.Alerter,
		Producer: mq.GetHistoryProducer(),
		Metrics:  s.Metrics,
		History:  s.Config.Reply.History,
	})
	defer engine.Close()

	if err := engine.Start(); err != nil {
		return
	}
	engine.Chat()
}
