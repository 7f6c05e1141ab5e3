package reply

import (
	"strings"

	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
)

// Book 大模型不可用时使用的兜底回复
type Book struct {
	picker Picker
}

func NewBook(picker Picker) *Book {
	return &Book{picker: picker}
}

// Compose 根据分析结果组装回复
// 危机干预优先于其他一切内容, 且总是附带求助热线
func (b *Book) Compose(r *analysis.Record) string {
	lang := normalizeLang(r.Language)
	s := &r.Strategy
	topics := r.SensitiveFlags.TopicCategories

	if s.Has(analysis.StrategyCrisisIntervention) {
		res := CrisisResources(topics)
		return join(b.pick(crisisReplies, lang), res.Format(lang))
	}

	if s.Has(analysis.StrategySensitiveContent) {
		text := b.pick(sensitiveReplies, lang)
		if s.Has(analysis.StrategyProfessional) {
			res := Resources(topics)
			text = join(text, res.Format(lang))
		}
		return text
	}

	parts := make([]string, 0, 4)
	_, familyStress := r.Emotions["family_stress"]
	_, careerAnxiety := r.Emotions["career_anxiety"]
	_, relationship := r.Emotions["relationship_issues"]
	if s.Has(analysis.StrategyFamilyCounseling) && familyStress {
		parts = append(parts, b.pick(familyReplies, lang))
	}
	if r.CulturalContext.CareerPressure && careerAnxiety {
		parts = append(parts, b.pick(careerReplies, lang))
	}
	if relationship {
		parts = append(parts, b.pick(relationshipReplies, lang))
	}
	if s.Has(analysis.StrategySocialPressure) {
		parts = append(parts, b.pick(socialReplies, lang))
	}
	if greet, ok := regionalSupport[r.Regional.PrimaryRegion]; ok {
		parts = append(parts, greet)
	}
	if s.Has(analysis.StrategyHealthyCoping) {
		parts = append(parts, b.coping(lang, careerAnxiety))
	}

	if len(parts) == 0 {
		return b.pick(defaultReplies, lang)
	}
	if q := followUp(r, lang); q != "" {
		parts = append(parts, q)
	}
	return join(parts...)
}

func (b *Book) pick(v variants, lang string) string {
	list := v[lang]
	if len(list) == 0 {
		list = v[analysis.LangEnglish]
	}
	i := b.picker.Pick(len(list))
	if i < 0 || i >= len(list) {
		i = 0
	}
	return list[i]
}

// coping 不健康的应对方式时给出一条建议, 职业焦虑时可能给出grounding
func (b *Book) coping(lang string, careerAnxiety bool) string {
	keys := []string{copingBreathing}
	if careerAnxiety {
		keys = append(keys, copingGrounding)
	}
	keys = append(keys, copingPhysical)
	i := b.picker.Pick(len(keys))
	if i < 0 || i >= len(keys) {
		i = 0
	}
	return copingSuggestions[lang][keys[i]]
}

func followUp(r *analysis.Record, lang string) string {
	for _, e := range followUpOrder {
		if _, ok := r.Emotions[e]; ok {
			return followUps[lang][e]
		}
	}
	return ""
}

func normalizeLang(lang string) string {
	switch lang {
	case analysis.LangHindi, analysis.LangHinglish, analysis.LangEnglish:
		return lang
	default:
		return analysis.LangEnglish
	}
}

func join(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}

// Greeting 开场白, 未知语言时使用Hinglish
func Greeting(lang string) string {
	if g, ok := greetings[lang]; ok {
		return g
	}
	return greetings[analysis.LangHinglish]
}
