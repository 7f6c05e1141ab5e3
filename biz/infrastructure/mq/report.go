package mq

import (
	"sort"
	"strings"

	"github.com/xh-polaris/psych-honey/biz/application/dto"
	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/mapper/history"
)

// strategySuggestions 根据出现过的策略给出后续跟进建议
var strategySuggestions = map[string]string{
	analysis.StrategyCrisisIntervention: "立即安排专业人员跟进, 确认用户当前安全",
	analysis.StrategyProfessional:       "建议转介心理咨询师或相关专科医生",
	analysis.StrategySensitiveContent:   "涉及敏感话题, 后续沟通注意隐私与不评判",
	analysis.StrategyFamilyCounseling:   "关注家庭压力, 可考虑家庭咨询",
	analysis.StrategySocialPressure:     "关注社会期待带来的压力",
	analysis.StrategyHealthyCoping:      "引导替换不健康的应对方式",
}

func toDialogs(histories []*dto.ChatHistory) []*history.Dialog {
	dialogs := make([]*history.Dialog, 0, len(histories))
	for _, his := range histories {
		d := &history.Dialog{
			Role:    his.Role,
			Content: his.Content,
		}
		if his.Analysis != nil {
			d.Emotion = his.Analysis.Emotion
			d.Level = his.Analysis.Level
			d.Topics = his.Analysis.Topics
		}
		dialogs = append(dialogs, d)
	}
	return dialogs
}

// buildReport 汇总用户消息的分析摘要
// 情绪按出现次数降序, 次数相同时按首次出现顺序
func buildReport(histories []*dto.ChatHistory) *history.Report {
	r := &history.Report{
		Emotions:   make([]string, 0),
		Topics:     make([]string, 0),
		Strategies: make([]string, 0),
		Suggestion: make([]string, 0),
	}
	counts := make(map[string]int)
	order := make([]string, 0)
	peak := analysis.LevelLow

	for _, h := range histories {
		if h.Role != consts.RoleUser || h.Analysis == nil {
			continue
		}
		a := h.Analysis
		if a.Emotion != "" && a.Emotion != analysis.Neutral {
			if counts[a.Emotion] == 0 {
				order = append(order, a.Emotion)
			}
			counts[a.Emotion]++
		}
		level := analysis.Level(a.Level)
		if level.Rank() > peak.Rank() {
			peak = level
		}
		if level == analysis.LevelCrisis {
			r.CrisisTurns++
		}
		r.Topics = appendUnique(r.Topics, a.Topics...)
		r.Strategies = appendUnique(r.Strategies, a.Strategies...)
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	r.Emotions = order
	r.PeakLevel = string(peak)
	r.Grade = r.PeakLevel
	for _, s := range r.Strategies {
		if text, ok := strategySuggestions[s]; ok {
			r.Suggestion = append(r.Suggestion, text)
		}
	}
	return r
}

// buildMsg 拼接消息
func buildMsg(his *history.History) string {
	var sb strings.Builder
	for _, h := range his.Dialogs {
		if h.Role == consts.RoleSystem {
			continue
		}
		sb.WriteString(h.Role)
		sb.WriteString(":")
		sb.WriteString(h.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, v := range list {
			if v == item {
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}
	}
	return list
}
