package cmd

import "github.com/xh-polaris/psych-honey/biz/domain/analysis"

type (
	// AnalyzeReq 单条消息分析请求, History为调用方保存的近期摘要
	AnalyzeReq struct {
		Message string                 `json:"message"`
		History []analysis.HistoryItem `json:"history"`
	}

	AnalyzeResp struct {
		Code   int              `json:"code"`
		Msg    string           `json:"msg"`
		Record *analysis.Record `json:"record"`
		// Reply 模板回复, 便于调用方直接展示
		Reply string `json:"reply"`
	}
)
