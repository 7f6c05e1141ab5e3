package dto

import "github.com/xh-polaris/psych-honey/biz/domain/analysis"

// NewAnalysisSummary 从分析结果提取摘要
func NewAnalysisSummary(r *analysis.Record) *AnalysisSummary {
	return &AnalysisSummary{
		Emotion:    r.DominantEmotion,
		Level:      string(r.Severity.Level),
		Topics:     append([]string(nil), r.SensitiveFlags.TopicCategories...),
		Strategies: append([]string(nil), r.Strategy.PrimaryStrategies...),
		Language:   r.Language,
	}
}

// HistoryItem 转换为分析器使用的历史摘要
func (s *AnalysisSummary) HistoryItem() analysis.HistoryItem {
	return analysis.HistoryItem{
		Emotion: s.Emotion,
		Topics:  s.Topics,
		Level:   analysis.Level(s.Level),
	}
}
