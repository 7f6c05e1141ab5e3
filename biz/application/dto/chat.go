package dto

type (
	// ChatStartReq 开始对话请求
	ChatStartReq struct {
		// 开始的时间戳
		Timestamp int64 `json:"timestamp"`
		// 使用者标记
		From string `json:"from"`
		// 期望的回复语言, 为空时按消息自动识别
		Lang string `json:"lang"`
	}

	// ChatReq 对话请求
	ChatReq struct {
		// 命令, 0对话, 1心跳, -1结束
		Cmd int64  `json:"cmd"`
		Msg string `json:"msg"`
	}

	// ChatEndResp 对话结束响应
	ChatEndResp struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}

	// ChatData 一次流式响应
	ChatData struct {
		Id        uint64           `json:"id"`
		Content   string           `json:"content"`
		SessionId string           `json:"session_id"`
		Timestamp int64            `json:"timestamp"`
		Finish    string           `json:"finish"`
		Analysis  *AnalysisSummary `json:"analysis,omitempty"`
	}

	// AnalysisSummary 单条用户消息的分析摘要
	AnalysisSummary struct {
		Emotion    string   `json:"emotion"`
		Level      string   `json:"level"`
		Topics     []string `json:"topics,omitempty"`
		Strategies []string `json:"strategies,omitempty"`
		Language   string   `json:"language,omitempty"`
	}

	// ChatHistory 对话记录
	ChatHistory struct {
		Role     string           `json:"role"`
		Content  string           `json:"content"`
		Analysis *AnalysisSummary `json:"analysis,omitempty"`
	}

	// ChatReport 模型生成的报告叙述部分
	ChatReport struct {
		Keywords   []string `json:"keywords"`
		Content    string   `json:"content"`
		Suggestion []string `json:"suggestion"`
	}
)
