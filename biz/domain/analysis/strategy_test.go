package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrategySelector_Select(t *testing.T) {
	sel := NewStrategySelector()

	t.Run("crisis first and other rules still apply", func(t *testing.T) {
		rs := sel.Select(Neutral,
			&CulturalContext{FamilyDynamics: true},
			&Severity{Level: LevelCrisis},
			&CopingSignals{NeedsGuidance: true},
			&SensitiveFlags{})
		assert.Equal(t, []string{StrategyCrisisIntervention, StrategyFamilyCounseling, StrategyHealthyCoping}, rs.PrimaryStrategies)
		assert.Equal(t, ToneUrgent, rs.Tone)
		assert.Equal(t, ApproachDirective, rs.Approach)
	})

	t.Run("crisis flag forces urgent directive at any severity", func(t *testing.T) {
		for _, level := range []Level{LevelLow, LevelMedium, LevelHigh} {
			rs := sel.Select(Neutral, &CulturalContext{}, &Severity{Level: level}, &CopingSignals{},
				&SensitiveFlags{ContainsSensitiveContent: true, CrisisInterventionNeeded: true, RequiresProfessionalHelp: true})
			assert.Equal(t, []string{StrategyCrisisIntervention, StrategySensitiveContent, StrategyProfessional}, rs.PrimaryStrategies, level)
			assert.Equal(t, ToneUrgent, rs.Tone, level)
			assert.Equal(t, ApproachDirective, rs.Approach, level)
		}
	})

	t.Run("sensitive without referral", func(t *testing.T) {
		rs := sel.Select("sad", &CulturalContext{}, &Severity{Level: LevelMedium}, &CopingSignals{},
			&SensitiveFlags{ContainsSensitiveContent: true})
		assert.Equal(t, []string{StrategySensitiveContent}, rs.PrimaryStrategies)
		assert.True(t, rs.Has(StrategySensitiveContent))
		assert.False(t, rs.Has(StrategyProfessional))
	})

	t.Run("high severity is urgent but collaborative", func(t *testing.T) {
		rs := sel.Select("sad", &CulturalContext{SocialExpectations: true}, &Severity{Level: LevelHigh}, &CopingSignals{}, &SensitiveFlags{})
		assert.Equal(t, []string{StrategySocialPressure}, rs.PrimaryStrategies)
		assert.Equal(t, ToneUrgent, rs.Tone)
		assert.Equal(t, ApproachCollaborative, rs.Approach)
	})

	t.Run("fallback", func(t *testing.T) {
		rs := sel.Select(Neutral, &CulturalContext{}, &Severity{Level: LevelLow}, &CopingSignals{}, &SensitiveFlags{})
		assert.Equal(t, []string{StrategyGeneralSupport}, rs.PrimaryStrategies)
		assert.Equal(t, ToneSupportive, rs.Tone)
		assert.Equal(t, ApproachCollaborative, rs.Approach)
	})
}
