package reply

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
)

type firstPicker struct{}

func (firstPicker) Pick(int) int { return 0 }

func analyze(t *testing.T, text string) *analysis.Record {
	t.Helper()
	r, err := analysis.NewAnalyzer(analysis.NewStore(analysis.Default())).Analyze(text, nil)
	require.NoError(t, err)
	return r
}

func TestBook_Compose(t *testing.T) {
	book := NewBook(firstPicker{})

	t.Run("crisis always carries helpline", func(t *testing.T) {
		out := book.Compose(analyze(t, "I want to kill myself"))
		assert.Contains(t, out, crisisReplies[analysis.LangEnglish][0])
		assert.Contains(t, out, "9152987821")
	})

	t.Run("crisis phrase without sensitive topic", func(t *testing.T) {
		r := analyze(t, "bas ab main give up kar raha hun")
		require.Empty(t, r.SensitiveFlags.TopicCategories)
		out := book.Compose(r)
		assert.Contains(t, out, "9152987821")
		assert.Contains(t, out, crisisReplies[analysis.LangHinglish][0])
	})

	t.Run("sensitive content with referral", func(t *testing.T) {
		out := book.Compose(analyze(t, "gambling addiction is ruining me"))
		assert.Contains(t, out, sensitiveReplies[analysis.LangEnglish][0])
		assert.Contains(t, out, "Addiction Counselor")
	})

	t.Run("family pressure with follow up", func(t *testing.T) {
		out := book.Compose(analyze(t, "ghar wale bahut pressure de rahe hain shaadi ke liye"))
		assert.Contains(t, out, familyReplies[analysis.LangHinglish][0])
		assert.Contains(t, out, followUps[analysis.LangHinglish]["family_stress"])
	})

	t.Run("unhealthy coping gets a suggestion", func(t *testing.T) {
		out := book.Compose(analyze(t, "raat bhar smoking kar raha hun"))
		assert.Contains(t, out, copingSuggestions[analysis.LangHinglish][copingBreathing])
	})

	t.Run("default", func(t *testing.T) {
		assert.Equal(t, defaultReplies[analysis.LangHinglish][0], book.Compose(analyze(t, "")))
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		r := analyze(t, "")
		r.Language = "tamil"
		assert.Equal(t, defaultReplies[analysis.LangEnglish][0], book.Compose(r))
	})
}

func TestTemplates_CoverEveryLanguage(t *testing.T) {
	langs := []string{analysis.LangHindi, analysis.LangHinglish, analysis.LangEnglish}
	for _, v := range []variants{crisisReplies, sensitiveReplies, familyReplies, careerReplies,
		relationshipReplies, socialReplies, defaultReplies} {
		for _, l := range langs {
			assert.NotEmpty(t, v[l], l)
		}
	}
	for _, l := range langs {
		assert.Len(t, copingSuggestions[l], 3, l)
		assert.Len(t, followUps[l], len(followUpOrder), l)
	}
}

func TestRandPicker(t *testing.T) {
	a, b := NewRandPicker(42), NewRandPicker(42)
	for i := 0; i < 20; i++ {
		x := a.Pick(5)
		assert.Equal(t, x, b.Pick(5))
		assert.GreaterOrEqual(t, x, 0)
		assert.Less(t, x, 5)
	}
	assert.Equal(t, 0, a.Pick(1))
	assert.Equal(t, 0, a.Pick(0))
}

func TestResources(t *testing.T) {
	d := Resources([]string{"depression_suicidal_thoughts"})
	require.Len(t, d.Helplines, 3)
	assert.Equal(t, "9152987821", d.Helplines[0].Number)
	assert.Equal(t, "080-46110007", d.Helplines[2].Number)
	assert.Contains(t, d.ProfessionalTypes, "Psychiatrist")

	d = Resources([]string{"sexual_health_sexual_trauma"})
	assert.Empty(t, d.Helplines)
	assert.Contains(t, d.Websites, "https://www.plannedparenthood.org")

	d = Resources(nil)
	assert.True(t, d.Empty())
	assert.Equal(t, "", d.Format(analysis.LangEnglish))

	d = CrisisResources(nil)
	assert.Equal(t, "9152987821", d.Helplines[0].Number)
	assert.Contains(t, d.Format(analysis.LangHindi), resourceClosing[analysis.LangHindi])
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, greetings[analysis.LangEnglish], Greeting(analysis.LangEnglish))
	assert.Equal(t, greetings[analysis.LangHinglish], Greeting(""))
}
