package analysis

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(NewStore(Default()))
}

func TestAnalyzer_Scenarios(t *testing.T) {
	a := newTestAnalyzer()

	t.Run("explicit self harm", func(t *testing.T) {
		r, err := a.Analyze("I want to kill myself", nil)
		require.NoError(t, err)

		assert.Equal(t, LevelCrisis, r.Severity.Level)
		assert.True(t, r.SensitiveFlags.CrisisInterventionNeeded)
		assert.Equal(t, []string{StrategyCrisisIntervention, StrategySensitiveContent, StrategyProfessional},
			r.Strategy.PrimaryStrategies)
		assert.Equal(t, ToneUrgent, r.Strategy.Tone)
		assert.Equal(t, ApproachDirective, r.Strategy.Approach)
		assert.Equal(t, LangEnglish, r.Language)
		assert.Equal(t, Neutral, r.DominantEmotion)
	})

	t.Run("family pressure in hinglish", func(t *testing.T) {
		r, err := a.Analyze("ghar wale bahut pressure de rahe hain shaadi ke liye", nil)
		require.NoError(t, err)

		assert.True(t, r.CulturalContext.FamilyDynamics)
		require.Contains(t, r.Emotions, "family_stress")
		assert.Equal(t, IntensityHigh, r.Emotions["family_stress"].Intensity)
		assert.Equal(t, IntensityMedium, r.Emotions["stressed"].Intensity)
		assert.Equal(t, "family_stress", r.DominantEmotion)
		assert.Contains(t, r.Strategy.PrimaryStrategies, StrategyFamilyCounseling)
		assert.Equal(t, LevelMedium, r.Severity.Level)
		assert.Equal(t, 5, r.Severity.Score)
		assert.Equal(t, LangHinglish, r.Language)
	})

	t.Run("mild positive", func(t *testing.T) {
		r, err := a.Analyze("I feel okay today", nil)
		require.NoError(t, err)

		assert.Equal(t, "happy", r.DominantEmotion)
		assert.Equal(t, IntensityLow, r.Emotions["happy"].Intensity)
		assert.Equal(t, LevelLow, r.Severity.Level)
		assert.Equal(t, []string{StrategyGeneralSupport}, r.Strategy.PrimaryStrategies)
		assert.Equal(t, "recent", r.Temporal.TimeContext)
	})

	t.Run("empty message", func(t *testing.T) {
		r, err := a.Analyze("", nil)
		require.NoError(t, err)

		assert.Equal(t, Neutral, r.DominantEmotion)
		assert.Empty(t, r.Emotions)
		assert.Equal(t, LevelLow, r.Severity.Level)
		assert.Equal(t, []string{StrategyGeneralSupport}, r.Strategy.PrimaryStrategies)
		assert.Equal(t, ToneSupportive, r.Strategy.Tone)
		assert.Equal(t, ApproachCollaborative, r.Strategy.Approach)
		assert.False(t, r.CulturalContext.Any())
		assert.True(t, r.NoSignal)
	})

	t.Run("unknown script falls through to general support", func(t *testing.T) {
		r, err := a.Analyze("ஏதோ சரியில்லை", nil)
		require.NoError(t, err)

		assert.True(t, r.NoSignal)
		assert.Equal(t, []string{StrategyGeneralSupport}, r.Strategy.PrimaryStrategies)
	})
}

func TestAnalyzer_CrisisPhrasesAlwaysEscalate(t *testing.T) {
	a := newTestAnalyzer()
	for _, phrase := range Default().CrisisPhrases {
		msg := "sun lo, " + phrase + " bas itna hi"
		r, err := a.Analyze(msg, nil)
		require.NoError(t, err)

		assert.Equal(t, LevelCrisis, r.Severity.Level, msg)
		require.NotEmpty(t, r.Strategy.PrimaryStrategies, msg)
		assert.Equal(t, StrategyCrisisIntervention, r.Strategy.PrimaryStrategies[0], msg)
		assert.Equal(t, ToneUrgent, r.Strategy.Tone, msg)
		assert.Equal(t, ApproachDirective, r.Strategy.Approach, msg)
	}
}

func TestAnalyzer_SuicidalPatternsIgnoreSurroundingText(t *testing.T) {
	a := newTestAnalyzer()
	wrappers := [][2]string{
		{"", ""},
		{"I am happy and everything is amazing but ", ""},
		{"", " lekin family values bhi important hain"},
		{"exam ke baad ", " aaj sab theek hai"},
	}

	for _, g := range Default().SensitiveGroups {
		for _, e := range g.Entries {
			if e.Category != categorySuicidal && e.Category != categorySelfHarm {
				continue
			}
			for _, p := range e.Patterns {
				for _, w := range wrappers {
					msg := w[0] + p + w[1]
					r, err := a.Analyze(msg, nil)
					require.NoError(t, err)
					assert.True(t, r.SensitiveFlags.CrisisInterventionNeeded, msg)
					assert.Equal(t, LevelCrisis, r.Severity.Level, msg)
					assert.Equal(t, StrategyCrisisIntervention, r.Strategy.PrimaryStrategies[0], msg)
				}
			}
		}
	}
}

func TestAnalyzer_KeepsEveryMatchedEmotion(t *testing.T) {
	r, err := newTestAnalyzer().Analyze("I am sad and angry and lonely", nil)
	require.NoError(t, err)

	assert.Len(t, r.Emotions, 3)
	assert.Contains(t, r.Emotions, "sad")
	assert.Contains(t, r.Emotions, "angry")
	assert.Contains(t, r.Emotions, "lonely")
	// 同分时先注册者胜出
	assert.Equal(t, "sad", r.DominantEmotion)
	assert.Equal(t, LevelHigh, r.Severity.Level)
	assert.Equal(t, ToneUrgent, r.Strategy.Tone)
	assert.Equal(t, ApproachCollaborative, r.Strategy.Approach)
}

func TestAnalyzer_HighScoreWithoutCrisisSignalStaysHigh(t *testing.T) {
	r, err := newTestAnalyzer().Analyze("very sad, furious, panic, burnout, very lonely", nil)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, r.Severity.Score, 10)
	assert.Equal(t, LevelHigh, r.Severity.Level)
	assert.NotContains(t, r.Strategy.PrimaryStrategies, StrategyCrisisIntervention)
}

func TestAnalyzer_ProfessionalHelpMonotonic(t *testing.T) {
	a := newTestAnalyzer()
	inputs := []string{
		"",
		"I feel okay today",
		"I am sad and angry and lonely",
		"very sad, furious, panic, burnout, very lonely",
		"I want to kill myself",
		"my partner is a violent partner",
		"thoda tension hai exam ka",
		"मैं बहुत उदास हूं और अकेला हूं",
	}
	for _, in := range inputs {
		r, err := a.Analyze(in, nil)
		require.NoError(t, err)
		if r.Severity.Level == LevelHigh || r.Severity.Level == LevelCrisis {
			assert.True(t, r.Severity.NeedsProfessionalHelp, in)
		} else {
			assert.False(t, r.Severity.NeedsProfessionalHelp, in)
		}
	}
}

func TestAnalyzer_Deterministic(t *testing.T) {
	a := newTestAnalyzer()
	history := []HistoryItem{{Emotion: "family_stress", Level: LevelMedium}}
	msg := "ghar wale bahut pressure de rahe hain, log kya kahenge, smoking kar raha hun"

	first, err := a.Analyze(msg, history)
	require.NoError(t, err)
	second, err := a.Analyze(msg, history)
	require.NoError(t, err)

	b1, err := json.Marshal(first)
	require.NoError(t, err)
	b2, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(b1), string(b2))
	assert.True(t, first.Trend.RecurringEmotion)
	assert.Equal(t, []string{StrategyFamilyCounseling, StrategySocialPressure, StrategyHealthyCoping},
		first.Strategy.PrimaryStrategies)
}

func TestAnalyzer_HistoryDoesNotChangeSeverity(t *testing.T) {
	a := newTestAnalyzer()
	without, err := a.Analyze("I feel okay today", nil)
	require.NoError(t, err)
	with, err := a.Analyze("I feel okay today", []HistoryItem{{Emotion: "sad", Level: LevelCrisis}})
	require.NoError(t, err)

	assert.Equal(t, without.Severity, with.Severity)
	assert.Equal(t, without.Strategy, with.Strategy)
	assert.True(t, with.Trend.PriorCrisis)
	assert.Equal(t, 1, with.Trend.Turns)
}

func TestAnalyzer_InvalidText(t *testing.T) {
	r, err := newTestAnalyzer().Analyze("\xff\xfe", nil)
	assert.ErrorIs(t, err, ErrInvalidText)
	assert.Nil(t, r)
}

func TestAnalyzer_ConcurrentUseWithReplace(t *testing.T) {
	store := NewStore(Default())
	a := NewAnalyzer(store)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r, err := a.Analyze("I want to kill myself", nil)
				if assert.NoError(t, err) {
					assert.Equal(t, LevelCrisis, r.Severity.Level)
				}
			}
		}()
	}
	for i := 0; i < 10; i++ {
		store.Replace(Default())
	}
	wg.Wait()
}
