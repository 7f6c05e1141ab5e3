package analysis

// Intensity 情绪强度
type Intensity string

const (
	IntensityLow     Intensity = "low"
	IntensityMedium  Intensity = "medium"
	IntensityHigh    Intensity = "high"
	IntensityExtreme Intensity = "extreme"
)

// Weight 强度对应的分值, 未知强度按medium处理
func (i Intensity) Weight() int {
	switch i {
	case IntensityLow:
		return 1
	case IntensityMedium:
		return 2
	case IntensityHigh:
		return 3
	case IntensityExtreme:
		return 4
	default:
		return 2
	}
}

// Level 严重等级
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
	LevelCrisis Level = "crisis"
)

// Rank 等级的序数, 用于比较
func (l Level) Rank() int {
	switch l {
	case LevelMedium:
		return 1
	case LevelHigh:
		return 2
	case LevelCrisis:
		return 3
	default:
		return 0
	}
}

type Tone string

const (
	ToneUrgent     Tone = "urgent"
	ToneSupportive Tone = "supportive"
)

type Approach string

const (
	ApproachDirective     Approach = "directive"
	ApproachCollaborative Approach = "collaborative"
)

// 回复策略标签
const (
	StrategyCrisisIntervention = "crisis_intervention"
	StrategySensitiveContent   = "sensitive_content_response"
	StrategyProfessional       = "professional_referral"
	StrategyFamilyCounseling   = "family_counseling"
	StrategySocialPressure     = "social_pressure_guidance"
	StrategyHealthyCoping      = "healthy_coping_techniques"
	StrategyGeneralSupport     = "general_emotional_support"
)

// Neutral 没有识别到任何情绪时的主导情绪
const Neutral = "neutral"

// 语言
const (
	LangHindi    = "hindi"
	LangHinglish = "hinglish"
	LangEnglish  = "english"
)

type EmotionScore struct {
	Intensity  Intensity `json:"intensity"`
	Confidence float64   `json:"confidence"`
}

// Emotions 情绪识别结果
type Emotions struct {
	Scores   map[string]EmotionScore `json:"scores"`
	Dominant string                  `json:"dominant"`
}

// SensitiveFlags 敏感话题识别结果
type SensitiveFlags struct {
	ContainsSensitiveContent bool     `json:"contains_sensitive_content"`
	TopicCategories          []string `json:"topic_categories"`
	CrisisInterventionNeeded bool     `json:"crisis_intervention_needed"`
	RequiresProfessionalHelp bool     `json:"requires_professional_help"`
	SeverityLevel            Level    `json:"severity_level"`
	ContentWarnings          []string `json:"content_warnings"`
	ResponseGuidelines       []string `json:"response_guidelines"`
}

// CulturalContext 文化语境识别结果
type CulturalContext struct {
	FamilyDynamics         bool     `json:"family_dynamics"`
	SocialExpectations     bool     `json:"social_expectations"`
	CareerPressure         bool     `json:"career_pressure"`
	FinancialConcerns      bool     `json:"financial_concerns"`
	RelationshipStatus     bool     `json:"relationship_status"`
	TraditionalVsModern    string   `json:"traditional_vs_modern"`
	FamilyInvolvementLevel string   `json:"family_involvement_level"`
	SocialPressureLevel    string   `json:"social_pressure_level"`
	Contexts               []string `json:"cultural_contexts"`
	Challenges             []string `json:"cultural_challenges"`
	RecommendedApproach    []string `json:"recommended_approach"`
}

// Any 是否有任一文化标记
func (c *CulturalContext) Any() bool {
	return c.FamilyDynamics || c.SocialExpectations || c.CareerPressure || c.FinancialConcerns || c.RelationshipStatus
}

type CopingSignals struct {
	CurrentCoping []string `json:"current_coping"`
	NeedsGuidance bool     `json:"needs_guidance"`
	SeekingHelp   bool     `json:"seeking_help"`
}

type Severity struct {
	Level                 Level `json:"level"`
	Score                 int   `json:"score"`
	NeedsProfessionalHelp bool  `json:"needs_professional_help"`
}

type ResponseStrategy struct {
	PrimaryStrategies []string `json:"primary_strategies"`
	Tone              Tone     `json:"tone"`
	Approach          Approach `json:"approach"`
}

// Has 是否包含某个策略
func (s *ResponseStrategy) Has(strategy string) bool {
	for _, v := range s.PrimaryStrategies {
		if v == strategy {
			return true
		}
	}
	return false
}

type TemporalContext struct {
	TimeContext  string `json:"time_context"`
	UrgencyLevel string `json:"urgency_level"`
}

type RegionalInfo struct {
	Regions       []string `json:"regions"`
	PrimaryRegion string   `json:"primary_region"`
}

type PersonalizationHints struct {
	UseRegionalTerms          string `json:"use_regional_terms"`
	CulturalSensitivityNeeded bool   `json:"cultural_sensitivity_needed"`
	FamilyContext             bool   `json:"family_context"`
	ProfessionalContext       bool   `json:"professional_context"`
}

// HistoryItem 调用方提供的近期消息摘要, 只读
type HistoryItem struct {
	Emotion string   `json:"emotion"`
	Topics  []string `json:"topics"`
	Level   Level    `json:"level,omitempty"`
}

// Trend 结合历史得到的趋势, 不影响严重等级和策略
type Trend struct {
	Turns            int  `json:"turns"`
	RecurringEmotion bool `json:"recurring_emotion"`
	PriorCrisis      bool `json:"prior_crisis"`
}

// Record 一条消息的完整分析结果, 构造后不再修改
type Record struct {
	Emotions        map[string]EmotionScore `json:"emotions"`
	DominantEmotion string                  `json:"dominant_emotion"`
	CulturalContext CulturalContext         `json:"cultural_context"`
	SensitiveFlags  SensitiveFlags          `json:"sensitive_flags"`
	CopingSignals   CopingSignals           `json:"coping_signals"`
	Severity        Severity                `json:"severity"`
	Strategy        ResponseStrategy        `json:"response_strategy"`
	Temporal        TemporalContext         `json:"temporal_context"`
	Regional        RegionalInfo            `json:"regional_info"`
	Hints           PersonalizationHints    `json:"personalization_hints"`
	Language        string                  `json:"language"`
	Trend           Trend                   `json:"trend"`
	// NoSignal 没有任何检测器命中, 可能是未覆盖的语言, 置信度降低
	NoSignal bool `json:"no_signal"`
}

// Crisis 是否为危机等级
func (r *Record) Crisis() bool {
	return r.Severity.Level == LevelCrisis
}
