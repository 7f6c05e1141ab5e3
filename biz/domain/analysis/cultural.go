package analysis

import "strings"

// 文化标记名称, 与词表 CulturalFlags 的分类对应
const (
	flagFamily       = "family_dynamics"
	flagSocial       = "social_expectations"
	flagCareer       = "career_pressure"
	flagFinancial    = "financial_concerns"
	flagRelationship = "relationship_status"
)

// CulturalDetector 家庭, 社会, 职业与经济压力等文化语境识别
type CulturalDetector struct {
	store *Store
}

func NewCulturalDetector(store *Store) *CulturalDetector {
	return &CulturalDetector{store: store}
}

// Detect 识别消息中的文化语境
func (d *CulturalDetector) Detect(text string) CulturalContext {
	return detectCultural(d.store.Get(), strings.ToLower(text))
}

func detectCultural(t *Taxonomy, text string) CulturalContext {
	c := CulturalContext{
		TraditionalVsModern:    "balanced",
		FamilyInvolvementLevel: "low",
		SocialPressureLevel:    "medium",
		Contexts:               make([]string, 0),
		Challenges:             make([]string, 0),
	}
	if text != "" {
		// 各标记相互独立
		for _, e := range t.CulturalFlags {
			if !containsAny(text, e.Patterns) {
				continue
			}
			switch e.Category {
			case flagFamily:
				c.FamilyDynamics = true
			case flagSocial:
				c.SocialExpectations = true
			case flagCareer:
				c.CareerPressure = true
			case flagFinancial:
				c.FinancialConcerns = true
			case flagRelationship:
				c.RelationshipStatus = true
			}
		}

		traditional := countHits(text, t.TraditionalMarkers)
		modern := countHits(text, t.ModernMarkers)
		switch {
		case traditional > modern:
			c.TraditionalVsModern = "traditional"
		case modern > traditional:
			c.TraditionalVsModern = "modern"
		}

		switch family := countHits(text, t.FamilyIndicators); {
		case family >= 3:
			c.FamilyInvolvementLevel = "high"
		case family >= 1:
			c.FamilyInvolvementLevel = "medium"
		}

		// 没有命中时保持medium, 与家庭参与度的默认值不同
		switch pressure := countHits(text, t.PressureIndicators); {
		case pressure >= 2:
			c.SocialPressureLevel = "high"
		case pressure >= 1:
			c.SocialPressureLevel = "medium"
		}

		c.Contexts = matchedCategories(text, t.CulturalContexts)
		c.Challenges = matchedCategories(text, t.CulturalChallenges)
	}
	c.RecommendedApproach = culturalApproach(&c)
	return c
}

// culturalApproach 推荐的文化沟通方式
func culturalApproach(c *CulturalContext) []string {
	var out []string
	switch c.TraditionalVsModern {
	case "traditional":
		out = []string{"respect_family_values", "gradual_education", "cultural_context"}
	case "modern":
		out = []string{"direct_communication", "professional_help", "peer_support"}
	default:
		out = []string{"balanced_approach", "family_respect", "modern_solutions"}
	}
	if c.FamilyInvolvementLevel == "high" {
		out = append(out, "family_inclusive_approach")
	}
	if c.SocialPressureLevel == "high" {
		out = append(out, "privacy_focused", "discrete_help", "social_support")
	}
	return out
}
