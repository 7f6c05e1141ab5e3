package gemini

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-honey/biz/application/dto"
	"github.com/xh-polaris/psych-honey/biz/domain/model"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/config"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
	"google.golang.org/api/iterator"
)

var _ model.ChatApp = (*ChatApp)(nil)

// ChatApp 是gemini对话模型应用
// 上下文由调用方传入, 模型端不保存会话
type ChatApp struct {
	client      *genai.Client
	modelID     string
	temperature float32
	maxTokens   int32
}

// NewChatApp 创建对话模型, 未配置ApiKey时返回nil, 调用方使用兜底回复
func NewChatApp(c *config.Config) model.ChatApp {
	app, err := newChatApp(context.Background(), &c.Gemini)
	if err != nil {
		log.Error("gemini chat app disabled: %v", err)
		return nil
	}
	return app
}

func newChatApp(ctx context.Context, c *config.Gemini) (*ChatApp, error) {
	client, err := newClient(ctx, c.ApiKey)
	if err != nil {
		return nil, err
	}
	return &ChatApp{
		client:      client,
		modelID:     c.ChatModel,
		temperature: c.Temperature,
		maxTokens:   c.MaxTokens,
	}, nil
}

// StreamCall 流式调用
func (app *ChatApp) StreamCall(ctx context.Context, req *model.ChatReq) (model.ChatAppScanner, error) {
	if strings.TrimSpace(req.Msg) == "" {
		return nil, errors.New("gemini: empty message")
	}
	m := app.client.GenerativeModel(app.modelID)
	m.SetTemperature(app.temperature)
	if app.maxTokens > 0 {
		m.SetMaxOutputTokens(app.maxTokens)
	}
	if req.System != "" {
		m.SystemInstruction = genai.NewUserContent(genai.Text(req.System))
	}

	cs := m.StartChat()
	cs.History = toContents(req.History)

	ctx, cancel := context.WithCancel(ctx)
	return &chatScanner{
		it:        cs.SendMessageStream(ctx, genai.Text(req.Msg)),
		cancel:    cancel,
		sessionId: req.SessionId,
	}, nil
}

// toContents 转换上下文, 系统消息已经合并到系统指令中
func toContents(history []model.Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		role := "user"
		switch msg.Role {
		case consts.RoleSystem:
			continue
		case consts.RoleAi:
			role = "model"
		}
		out = append(out, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(content)}})
	}
	return out
}

// Close 释放客户端
func (app *ChatApp) Close() error {
	return app.client.Close()
}

// chatScanner 是gemini流式调用的响应
type chatScanner struct {
	it        *genai.GenerateContentResponseIterator
	cancel    context.CancelFunc
	sessionId string
	id        atomic.Uint64
}

// Next 返回下一段增量文本
func (s *chatScanner) Next() (*dto.ChatData, error) {
	resp, err := s.it.Next()
	if errors.Is(err, iterator.Done) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	text, finish := textOf(resp)
	return &dto.ChatData{
		Id:        s.id.Add(1),
		Content:   text,
		SessionId: s.sessionId,
		Timestamp: time.Now().Unix(),
		Finish:    finish,
	}, nil
}

func (s *chatScanner) Close() error {
	s.cancel()
	return nil
}
