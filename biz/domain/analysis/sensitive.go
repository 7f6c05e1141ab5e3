package analysis

import "strings"

// 需要特殊处理的敏感分类
const (
	categorySuicidal         = "suicidal_thoughts"
	categorySelfHarm         = "self_harm"
	categorySexualTrauma     = "sexual_trauma"
	categoryDomesticViolence = "domestic_violence"

	groupSexualHealth = "sexual_health"
	groupDepression   = "depression"
	groupAddiction    = "addiction"

	warningTrauma = "trauma_content"
)

// SensitiveDetector 敏感话题识别, 包括性健康, 抑郁, 成瘾与亲密关系问题
type SensitiveDetector struct {
	store *Store
}

func NewSensitiveDetector(store *Store) *SensitiveDetector {
	return &SensitiveDetector{store: store}
}

// Detect 识别消息中的敏感话题
func (d *SensitiveDetector) Detect(text string) SensitiveFlags {
	return detectSensitive(d.store.Get(), strings.ToLower(text))
}

// detectSensitive 单个自杀/自伤短语即触发危机干预, 不需要其他信号佐证
func detectSensitive(t *Taxonomy, text string) SensitiveFlags {
	flags := SensitiveFlags{
		TopicCategories:    make([]string, 0),
		SeverityLevel:      LevelLow,
		ContentWarnings:    make([]string, 0),
		ResponseGuidelines: make([]string, 0),
	}
	if text == "" {
		return flags
	}

	for _, g := range t.SensitiveGroups {
		for _, e := range g.Entries {
			if !containsAny(text, e.Patterns) {
				continue
			}
			flags.ContainsSensitiveContent = true
			flags.TopicCategories = appendUnique(flags.TopicCategories, g.Name+"_"+e.Category)

			switch {
			case e.Category == categorySuicidal || e.Category == categorySelfHarm:
				flags.CrisisInterventionNeeded = true
				flags.RequiresProfessionalHelp = true
				flags.SeverityLevel = LevelCrisis
			case e.Category == categorySexualTrauma:
				flags.RequiresProfessionalHelp = true
				flags.ContentWarnings = appendUnique(flags.ContentWarnings, warningTrauma)
			case e.Category == categoryDomesticViolence:
				flags.RequiresProfessionalHelp = true
				if flags.SeverityLevel != LevelCrisis {
					flags.SeverityLevel = LevelHigh
				}
			case g.Name == groupAddiction:
				flags.RequiresProfessionalHelp = true
			}
		}
	}

	// 没有强制等级时, 取第一个命中的通用等级
	if flags.SeverityLevel == LevelLow {
		for _, e := range t.SeverityIndicators {
			if containsAny(text, e.Patterns) {
				flags.SeverityLevel = Level(e.Category)
				break
			}
		}
	}

	flags.ResponseGuidelines = responseGuidelines(&flags)
	return flags
}

// responseGuidelines 根据识别结果生成回复准则, 去重且顺序固定
func responseGuidelines(flags *SensitiveFlags) []string {
	out := make([]string, 0)
	if flags.CrisisInterventionNeeded {
		out = appendUnique(out,
			"immediate_crisis_response",
			"provide_helpline_numbers",
			"encourage_professional_help",
			"non_judgmental_support",
		)
	}
	if hasTopicGroup(flags.TopicCategories, groupSexualHealth) {
		out = appendUnique(out,
			"professional_medical_advice",
			"normalize_sexual_health_discussions",
			"provide_educational_resources",
			"maintain_privacy_respect",
		)
	}
	if hasTopicGroup(flags.TopicCategories, groupDepression) {
		out = appendUnique(out,
			"validate_emotions",
			"encourage_professional_therapy",
			"provide_coping_strategies",
			"monitor_for_crisis_signs",
		)
	}
	if hasTopicGroup(flags.TopicCategories, groupAddiction) {
		out = appendUnique(out,
			"non_judgmental_approach",
			"encourage_recovery_resources",
			"provide_support_group_info",
			"acknowledge_recovery_difficulty",
		)
	}
	if flags.RequiresProfessionalHelp {
		out = appendUnique(out, "emphasize_professional_help")
	}
	return out
}

func hasTopicGroup(topics []string, group string) bool {
	for _, t := range topics {
		if strings.HasPrefix(t, group+"_") {
			return true
		}
	}
	return false
}
