package model

import (
	"context"

	"github.com/xh-polaris/psych-honey/biz/application/dto"
)

// Message 一条上下文消息
type Message struct {
	Role    string
	Content string
}

// ChatReq 一次对话调用
type ChatReq struct {
	SessionId string
	// System 本轮的系统指令, 由分析结果生成
	System  string
	History []Message
	Msg     string
}

// ChatApp 是第三方对话大模型应用的抽象
type ChatApp interface {
	// StreamCall 流式调用, 采用增量输出, 即后续的输出不包括之前的输出
	StreamCall(ctx context.Context, req *ChatReq) (ChatAppScanner, error)

	// Close 关闭资源
	Close() error
}

// ChatAppScanner 是第三方对话调用的响应, 结束时返回io.EOF
type ChatAppScanner interface {
	Next() (*dto.ChatData, error)
	Close() error
}

// ReportApp 是第三方报告分析大模型应用的抽象
type ReportApp interface {
	// Call 获取报告结果
	Call(ctx context.Context, msg string) (*dto.ChatReport, error)

	// Close 关闭资源
	Close() error
}
