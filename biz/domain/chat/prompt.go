package chat

import (
	"fmt"
	"strings"

	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
	"github.com/xh-polaris/psych-honey/biz/domain/reply"
)

const persona = `You are Honey, a warm and culturally aware emotional-support companion for young people in India.
You listen without judgment, validate feelings, and keep replies short and conversational.
You are not a doctor: never diagnose or prescribe, and encourage professional help when it is needed.`

var languageRules = map[string]string{
	analysis.LangHindi:    "Reply in Hindi using Devanagari script. Common English words are fine.",
	analysis.LangHinglish: "Reply in Hinglish: Hindi written in Roman script mixed naturally with English, the way the user writes.",
	analysis.LangEnglish:  "Reply in simple, warm English.",
}

// strategyDirectives 每种回复策略对应的指令
var strategyDirectives = map[string]string{
	analysis.StrategyCrisisIntervention: "The user may be in crisis. Respond with immediate care, ask whether they are safe right now, urge them to contact a helpline or someone they trust, and share the helpline numbers below.",
	analysis.StrategySensitiveContent:   "The topic is sensitive. Be non-judgmental, respect privacy, and normalise talking about it.",
	analysis.StrategyProfessional:       "Gently recommend the kind of professional listed below and explain that seeking help is a sign of strength.",
	analysis.StrategyFamilyCounseling:   "Family pressure is involved. Acknowledge family values while supporting the user's own feelings and boundaries.",
	analysis.StrategySocialPressure:     "Social expectations are weighing on the user. Help separate their own wishes from what others will say.",
	analysis.StrategyHealthyCoping:      "The user mentions unhealthy coping. Without lecturing, suggest one healthy alternative such as breathing, grounding or a short walk.",
	analysis.StrategyGeneralSupport:     "Offer general emotional support and invite the user to share more.",
}

// BuildPrompt 根据分析结果生成本轮的系统指令
func BuildPrompt(r *analysis.Record) string {
	var sb strings.Builder
	sb.WriteString(persona)
	sb.WriteString("\n\n")

	rule, ok := languageRules[r.Language]
	if !ok {
		rule = languageRules[analysis.LangEnglish]
	}
	sb.WriteString(rule)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Tone: %s. Approach: %s.\n", r.Strategy.Tone, r.Strategy.Approach)
	if r.DominantEmotion != analysis.Neutral {
		fmt.Fprintf(&sb, "The user's dominant emotion appears to be %s.\n", strings.ReplaceAll(r.DominantEmotion, "_", " "))
	}

	sb.WriteString("\nGuidance for this reply:\n")
	for _, s := range r.Strategy.PrimaryStrategies {
		if d, ok := strategyDirectives[s]; ok {
			sb.WriteString("- ")
			sb.WriteString(d)
			sb.WriteString("\n")
		}
	}
	if r.Hints.FamilyContext {
		sb.WriteString("- Keep the Indian family context in mind.\n")
	}
	if r.Hints.UseRegionalTerms != "" && r.Hints.UseRegionalTerms != "general" {
		fmt.Fprintf(&sb, "- The user uses %s expressions; a light regional touch is welcome.\n", r.Hints.UseRegionalTerms)
	}
	if r.NoSignal {
		sb.WriteString("- The message gave few clear signals; ask an open question before assuming anything.\n")
	}

	var res reply.Directory
	switch {
	case r.Crisis():
		res = reply.CrisisResources(r.SensitiveFlags.TopicCategories)
	case r.Strategy.Has(analysis.StrategyProfessional):
		res = reply.Resources(r.SensitiveFlags.TopicCategories)
	}
	if !res.Empty() {
		sb.WriteString("\n")
		sb.WriteString(res.Format(analysis.LangEnglish))
		sb.WriteString("\n")
	}
	return sb.String()
}
