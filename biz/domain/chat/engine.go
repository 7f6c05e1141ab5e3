package chat

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-honey/biz/application/dto"
	"github.com/xh-polaris/psych-honey/biz/domain/alert"
	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
	"github.com/xh-polaris/psych-honey/biz/domain/model"
	"github.com/xh-polaris/psych-honey/biz/domain/reply"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/metrics"
)

// contextLimit 传给模型的上下文条数上限
const contextLimit = 20

// crisisMarker 危机回复中必须出现的热线号码
const crisisMarker = "9152987821"

// Conn 对话使用的长连接
type Conn interface {
	ReadJSON(obj any) error
	WriteJSON(obj any) error
	Error(errno *consts.Errno) error
	Pong() error
	Close() error
}

// Store 对话记录的存储
type Store interface {
	AddAi(sessionId, msg string) error
	AddUser(sessionId, msg string, summary *dto.AnalysisSummary) error
	AddSystem(sessionId, msg string) error
	Load(sessionId string) ([]*dto.ChatHistory, error)
	Recent(sessionId string, n int) ([]analysis.HistoryItem, error)
}

// Notifier 危机预警
type Notifier interface {
	Notify(ctx context.Context, alert *alert.Alert)
}

// Producer 对话结束后投递生成报告的消息
type Producer interface {
	Produce(ctx context.Context, sessionId, userId string, start, end time.Time) error
}

// Deps 引擎依赖的组件, 由service层注入
type Deps struct {
	Store    Store
	Analyzer *analysis.Analyzer
	// ChatApp 为nil时只使用兜底回复
	ChatApp  model.ChatApp
	Book     *reply.Book
	Notifier Notifier
	Producer Producer
	Metrics  *metrics.AnalysisMetrics
	// History 参与分析的近期用户消息条数
	History int
}

// Engine 是处理一轮对话的核心对象
// 每条用户消息先经过分析, 再由模型或兜底模板回复
type Engine struct {
	ctx    context.Context
	cancel context.CancelFunc

	ws     Conn
	deps   *Deps
	userId string

	// sessionId 由服务端生成, 在Start中写入
	sessionId string
	// lang 开场白的语言, 之后按消息自动识别
	lang string

	startTime time.Time
	round     int
}

// NewEngine 初始化一个Engine
func NewEngine(ctx context.Context, conn Conn, userId string, deps *Deps) *Engine {
	ctx, cancel := context.WithCancel(ctx)
	return &Engine{
		ctx:       ctx,
		cancel:    cancel,
		ws:        conn,
		deps:      deps,
		userId:    userId,
		startTime: time.Now(),
	}
}

// SessionId 当前会话id
func (e *Engine) SessionId() string {
	return e.sessionId
}

// Start 开始一轮对话, 读取开始帧并发送开场白
func (e *Engine) Start() error {
	var startReq dto.ChatStartReq
	if err := e.ws.ReadJSON(&startReq); err != nil {
		log.CtxError(e.ctx, "read start frame err: %v", err)
		_ = e.ws.Error(consts.ErrInvalidUser)
		return consts.ErrInvalidUser
	}
	log.CtxInfo(e.ctx, "调用方: %s, 用户: %s, 调用时间: %s", startReq.From, e.userId,
		time.Unix(startReq.Timestamp, 0).String())

	e.sessionId = uuid.NewString()
	e.lang = startReq.Lang

	greeting := reply.Greeting(e.lang)
	if err := e.deps.Store.AddSystem(e.sessionId, greeting); err != nil {
		return err
	}
	if err := e.deps.Store.AddAi(e.sessionId, greeting); err != nil {
		return err
	}
	return e.ws.WriteJSON(&dto.ChatData{
		Content:   greeting,
		SessionId: e.sessionId,
		Timestamp: time.Now().Unix(),
		Finish:    "stop",
	})
}

// Chat 长对话的主体部分, 逐条处理用户消息直到结束或连接断开
func (e *Engine) Chat() {
	var err error
	defer func() {
		if err != nil && !errors.Is(err, io.EOF) {
			log.CtxError(e.ctx, "chat err: %v", err)
		}
	}()

	for {
		var req dto.ChatReq
		if err = e.ws.ReadJSON(&req); err != nil {
			return
		}
		switch req.Cmd {
		case consts.EndCmd:
			return
		case consts.Ping:
			if err = e.ws.Pong(); err != nil {
				return
			}
			continue
		}
		if strings.TrimSpace(req.Msg) == "" {
			if err = e.ws.Error(consts.ErrEmptyMessage); err != nil {
				return
			}
			continue
		}
		e.round++
		if err = e.handle(req.Msg); err != nil {
			return
		}
	}
}

// handle 处理一条用户消息, 只有写连接失败时返回错误
func (e *Engine) handle(msg string) error {
	recent, err := e.deps.Store.Recent(e.sessionId, e.deps.History)
	if err != nil {
		log.CtxError(e.ctx, "load recent history err: %v", err)
	}

	begin := time.Now()
	record, err := e.deps.Analyzer.Analyze(msg, recent)
	if err != nil {
		return e.ws.Error(consts.ErrInvalidText)
	}
	e.deps.Metrics.ObserveAnalysis(string(record.Severity.Level), record.Strategy.PrimaryStrategies,
		time.Since(begin).Seconds())
	summary := dto.NewAnalysisSummary(record)

	if record.Crisis() {
		log.CtxInfo(e.ctx, "[chat] crisis detected, session=%s", e.sessionId)
		e.deps.Notifier.Notify(e.ctx, alert.NewAlert(e.sessionId, e.userId, summary.Level, summary.Emotion,
			summary.Topics, msg))
	}

	history := e.contextMessages()
	if err = e.deps.Store.AddUser(e.sessionId, msg, summary); err != nil {
		log.CtxError(e.ctx, "user history err: %v", err)
	}

	content, err := e.respond(record, summary, history, msg)
	if content != "" {
		if herr := e.deps.Store.AddAi(e.sessionId, content); herr != nil {
			log.CtxError(e.ctx, "ai history err: %v", herr)
		}
	}
	return err
}

// contextMessages 读取已有对话作为模型上下文
func (e *Engine) contextMessages() []model.Message {
	his, err := e.deps.Store.Load(e.sessionId)
	if err != nil {
		log.CtxError(e.ctx, "load history err: %v", err)
		return nil
	}
	if len(his) > contextLimit {
		his = his[len(his)-contextLimit:]
	}
	msgs := make([]model.Message, 0, len(his))
	for _, h := range his {
		msgs = append(msgs, model.Message{Role: h.Role, Content: h.Content})
	}
	return msgs
}

// respond 优先调用模型流式回复, 模型不可用时使用兜底模板
func (e *Engine) respond(r *analysis.Record, summary *dto.AnalysisSummary, history []model.Message,
	msg string) (string, error) {
	if e.deps.ChatApp == nil {
		e.deps.Metrics.ObserveFallback("disabled")
		return e.fallback(r, summary)
	}

	scanner, err := e.deps.ChatApp.StreamCall(e.ctx, &model.ChatReq{
		SessionId: e.sessionId,
		System:    BuildPrompt(r),
		History:   history,
		Msg:       msg,
	})
	if err != nil {
		log.CtxError(e.ctx, "chat app call err: %v", err)
		e.deps.Metrics.ObserveFallback("llm_error")
		return e.fallback(r, summary)
	}
	defer func() { _ = scanner.Close() }()

	var sb strings.Builder
	first := true
	for {
		data, err := scanner.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.CtxError(e.ctx, "chat app stream err: %v", err)
			if sb.Len() == 0 {
				e.deps.Metrics.ObserveFallback("llm_error")
				return e.fallback(r, summary)
			}
			break
		}
		data.SessionId = e.sessionId
		if first {
			data.Analysis = summary
			first = false
		}
		if err = e.ws.WriteJSON(data); err != nil {
			return sb.String(), err
		}
		sb.WriteString(data.Content)
	}

	// 危机回复必须带上热线
	if r.Crisis() && !strings.Contains(sb.String(), crisisMarker) {
		res := reply.CrisisResources(r.SensitiveFlags.TopicCategories)
		extra := "\n\n" + res.Format(r.Language)
		sb.WriteString(extra)
		if err = e.ws.WriteJSON(&dto.ChatData{
			Content:   extra,
			SessionId: e.sessionId,
			Timestamp: time.Now().Unix(),
			Finish:    "stop",
		}); err != nil {
			return sb.String(), err
		}
	}
	return sb.String(), nil
}

// fallback 使用模板回复, 一次性写出
func (e *Engine) fallback(r *analysis.Record, summary *dto.AnalysisSummary) (string, error) {
	content := e.deps.Book.Compose(r)
	return content, e.ws.WriteJSON(&dto.ChatData{
		Content:   content,
		SessionId: e.sessionId,
		Timestamp: time.Now().Unix(),
		Finish:    "stop",
		Analysis:  summary,
	})
}

// Close 结束本轮对话
func (e *Engine) Close() {
	if err := e.ws.WriteJSON(&dto.ChatEndResp{
		Code: 0,
		Msg:  "对话结束",
	}); err != nil {
		log.CtxError(e.ctx, "write end resp err: %v", err)
	}
	e.cancel()
	if err := e.ws.Close(); err != nil {
		log.CtxError(e.ctx, "close ws err: %v", err)
	}
	// 连接已关闭, 投递消息不能使用已取消的ctx
	if e.round > consts.ReportRounds && e.sessionId != "" {
		if err := e.deps.Producer.Produce(context.Background(), e.sessionId, e.userId, e.startTime, time.Now()); err != nil {
			log.Error("消息发送失败, sessionId: %s, err: %v", e.sessionId, err)
		}
	}
}
