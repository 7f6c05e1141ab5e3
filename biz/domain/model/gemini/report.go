package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-honey/biz/application/dto"
	"github.com/xh-polaris/psych-honey/biz/domain/model"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/config"
)

var _ model.ReportApp = (*ReportApp)(nil)

const reportInstruction = `You summarise a supportive mental-health chat for a counsellor.
Reply with JSON only: {"keywords": [string], "content": string, "suggestion": [string]}.
"content" is a short neutral narrative of what the user shared. Do not diagnose.`

// ReportApp 是gemini报告分析模型应用
// 单次调用, 无需管理上下文
type ReportApp struct {
	client  *genai.Client
	modelID string
}

var (
	instance model.ReportApp
	once     sync.Once
)

// GetReportApp 获取报告模型单例, 未配置时返回nil
func GetReportApp() model.ReportApp {
	once.Do(func() {
		c := config.GetConfig()
		client, err := newClient(context.Background(), c.Gemini.ApiKey)
		if err != nil {
			log.Error("gemini report app disabled: %v", err)
			return
		}
		instance = &ReportApp{client: client, modelID: c.Gemini.ReportModel}
	})
	return instance
}

func (app *ReportApp) Call(ctx context.Context, prompt string) (*dto.ChatReport, error) {
	m := app.client.GenerativeModel(app.modelID)
	m.ResponseMIMEType = "application/json"
	m.SystemInstruction = genai.NewUserContent(genai.Text(reportInstruction))

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}
	text, _ := textOf(resp)
	log.CtxInfo(ctx, "report result: %s", text)
	return parseReport(text)
}

// parseReport 解析模型返回的报告, 兼容代码块包裹
func parseReport(text string) (*dto.ChatReport, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.Trim(text, "`\n ")
	if text == "" {
		return nil, errors.New("gemini: empty report")
	}
	var report dto.ChatReport
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Close 释放客户端
func (app *ReportApp) Close() error {
	return app.client.Close()
}
