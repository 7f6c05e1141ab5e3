package analysis

import "strings"

// crisisBonus 命中危机短语时的固定加分
const crisisBonus = 10

// SeverityScorer 综合情绪强度, 危机短语与敏感话题结果评估严重等级
type SeverityScorer struct {
	store *Store
}

func NewSeverityScorer(store *Store) *SeverityScorer {
	return &SeverityScorer{store: store}
}

// Score 计算严重等级
func (s *SeverityScorer) Score(emotions map[string]EmotionScore, sensitive *SensitiveFlags, text string) Severity {
	return scoreSeverity(s.store.Get(), emotions, sensitive, strings.ToLower(text))
}

// scoreSeverity 危机等级当且仅当命中危机短语或需要危机干预
// 其他情况下分数再高也只到high
func scoreSeverity(t *Taxonomy, emotions map[string]EmotionScore, sensitive *SensitiveFlags, text string) Severity {
	score := 0
	for _, e := range emotions {
		score += e.Intensity.Weight()
	}

	phraseHit := text != "" && containsAny(text, t.CrisisPhrases)
	if phraseHit {
		score += crisisBonus
	}

	var level Level
	switch {
	case phraseHit || (sensitive != nil && sensitive.CrisisInterventionNeeded):
		level = LevelCrisis
	case score >= 6:
		level = LevelHigh
	case score >= 3:
		level = LevelMedium
	default:
		level = LevelLow
	}

	return Severity{
		Level:                 level,
		Score:                 score,
		NeedsProfessionalHelp: level == LevelCrisis || level == LevelHigh,
	}
}
