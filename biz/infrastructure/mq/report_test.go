package mq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xh-polaris/psych-honey/biz/application/dto"
	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/mapper/history"
)

func user(msg, emotion string, level analysis.Level, topics []string, strategies ...string) *dto.ChatHistory {
	return &dto.ChatHistory{Role: consts.RoleUser, Content: msg, Analysis: &dto.AnalysisSummary{
		Emotion: emotion, Level: string(level), Topics: topics, Strategies: strategies,
	}}
}

func ai(msg string) *dto.ChatHistory {
	return &dto.ChatHistory{Role: consts.RoleAi, Content: msg}
}

func TestBuildReport(t *testing.T) {
	histories := []*dto.ChatHistory{
		{Role: consts.RoleSystem, Content: "start"},
		user("ghar wale", "family_stress", analysis.LevelMedium, nil, analysis.StrategyFamilyCounseling),
		ai("main samajh sakti hun"),
		user("bahut udaas", "sad", analysis.LevelHigh, nil, analysis.StrategyGeneralSupport),
		user("kill myself", analysis.Neutral, analysis.LevelCrisis, []string{"depression_suicidal_thoughts"},
			analysis.StrategyCrisisIntervention, analysis.StrategySensitiveContent, analysis.StrategyProfessional),
		user("sad again", "sad", analysis.LevelMedium, nil, analysis.StrategyGeneralSupport),
		user("ghar wale phir se", "family_stress", analysis.LevelLow, nil, analysis.StrategyFamilyCounseling),
	}

	r := buildReport(histories)
	// sad与family_stress都出现两次, family_stress先出现
	assert.Equal(t, []string{"family_stress", "sad"}, r.Emotions)
	assert.Equal(t, string(analysis.LevelCrisis), r.PeakLevel)
	assert.Equal(t, r.PeakLevel, r.Grade)
	assert.Equal(t, 1, r.CrisisTurns)
	assert.Equal(t, []string{"depression_suicidal_thoughts"}, r.Topics)
	assert.Equal(t, []string{
		analysis.StrategyFamilyCounseling, analysis.StrategyGeneralSupport,
		analysis.StrategyCrisisIntervention, analysis.StrategySensitiveContent, analysis.StrategyProfessional,
	}, r.Strategies)
	require.Len(t, r.Suggestion, 4)
	assert.Equal(t, strategySuggestions[analysis.StrategyFamilyCounseling], r.Suggestion[0])
}

func TestBuildReport_NoAnalysis(t *testing.T) {
	r := buildReport([]*dto.ChatHistory{ai("hello")})
	assert.Empty(t, r.Emotions)
	assert.Equal(t, string(analysis.LevelLow), r.PeakLevel)
	assert.Zero(t, r.CrisisTurns)
}

func TestToDialogsAndBuildMsg(t *testing.T) {
	dialogs := toDialogs([]*dto.ChatHistory{
		{Role: consts.RoleSystem, Content: "start"},
		user("thoda tension", "anxious", analysis.LevelLow, []string{}),
		ai("main yahan hun"),
	})
	require.Len(t, dialogs, 3)
	assert.Equal(t, "anxious", dialogs[1].Emotion)
	assert.Empty(t, dialogs[2].Level)

	msg := buildMsg(&history.History{Dialogs: dialogs})
	assert.Equal(t, "user:thoda tension\nai:main yahan hun\n", msg)
}
