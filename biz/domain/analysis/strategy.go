package analysis

// StrategySelector 根据综合分析结果选择回复策略
type StrategySelector struct{}

func NewStrategySelector() *StrategySelector {
	return &StrategySelector{}
}

// Select 规则按固定顺序执行, 命中即追加
// 危机干预出现时总在首位, 但不会屏蔽后续规则
func (s *StrategySelector) Select(emotion string, cultural *CulturalContext, severity *Severity,
	coping *CopingSignals, sensitive *SensitiveFlags) ResponseStrategy {
	strategies := make([]string, 0, 4)
	crisis := severity.Level == LevelCrisis || sensitive.CrisisInterventionNeeded

	if crisis {
		strategies = append(strategies, StrategyCrisisIntervention)
	}

	if sensitive.ContainsSensitiveContent {
		strategies = append(strategies, StrategySensitiveContent)
		if sensitive.RequiresProfessionalHelp {
			strategies = append(strategies, StrategyProfessional)
		}
	}

	if cultural.FamilyDynamics {
		strategies = append(strategies, StrategyFamilyCounseling)
	}
	if cultural.SocialExpectations {
		strategies = append(strategies, StrategySocialPressure)
	}

	if coping.NeedsGuidance {
		strategies = append(strategies, StrategyHealthyCoping)
	}

	if len(strategies) == 0 {
		strategies = append(strategies, StrategyGeneralSupport)
	}

	rs := ResponseStrategy{
		PrimaryStrategies: strategies,
		Tone:              ToneSupportive,
		Approach:          ApproachCollaborative,
	}
	if crisis || severity.Level == LevelHigh {
		rs.Tone = ToneUrgent
	}
	if crisis {
		rs.Approach = ApproachDirective
	}
	return rs
}
