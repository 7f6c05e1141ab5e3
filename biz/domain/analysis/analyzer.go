package analysis

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidText 消息不是合法的UTF-8文本
var ErrInvalidText = errors.New("analysis: message is not valid utf-8 text")

// Analyzer 单条消息的分类与回复策略流水线
// 无状态, 只读取词表快照, 可并发调用
type Analyzer struct {
	store    *Store
	selector *StrategySelector
}

// NewAnalyzer 创建分析器, 词表通过store注入
func NewAnalyzer(store *Store) *Analyzer {
	return &Analyzer{
		store:    store,
		selector: NewStrategySelector(),
	}
}

// Analyze 分析一条消息, history为调用方提供的近期摘要, 可为空
// 空消息不是错误, 返回各检测器的默认结果
func (a *Analyzer) Analyze(text string, history []HistoryItem) (*Record, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}

	// 整个流水线使用同一份快照
	t := a.store.Get()
	lower := strings.ToLower(strings.TrimSpace(text))

	emotions := detectEmotions(t, lower)
	sensitive := detectSensitive(t, lower)
	cultural := detectCultural(t, lower)
	coping := detectCoping(t, lower)
	temporal := detectTemporal(t, lower)
	regional := detectRegional(t, lower)

	severity := scoreSeverity(t, emotions.Scores, &sensitive, lower)
	strategy := a.selector.Select(emotions.Dominant, &cultural, &severity, &coping, &sensitive)

	r := &Record{
		Emotions:        emotions.Scores,
		DominantEmotion: emotions.Dominant,
		CulturalContext: cultural,
		SensitiveFlags:  sensitive,
		CopingSignals:   coping,
		Severity:        severity,
		Strategy:        strategy,
		Temporal:        temporal,
		Regional:        regional,
		Hints:           personalizationHints(&cultural, &regional),
		Language:        detectLanguage(t, lower),
		Trend:           historyTrend(history, emotions.Dominant),
	}
	r.NoSignal = len(emotions.Scores) == 0 &&
		!sensitive.ContainsSensitiveContent &&
		!cultural.Any() &&
		len(coping.CurrentCoping) == 0 &&
		severity.Level == LevelLow
	return r, nil
}
