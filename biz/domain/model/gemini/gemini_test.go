package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xh-polaris/psych-honey/biz/domain/model"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/config"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
)

func TestTextOf(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content:      &genai.Content{Parts: []genai.Part{genai.Text("main "), genai.Text("yahan hun")}},
		FinishReason: genai.FinishReasonStop,
	}}}
	text, finish := textOf(resp)
	assert.Equal(t, "main yahan hun", text)
	assert.NotEmpty(t, finish)

	text, finish = textOf(&genai.GenerateContentResponse{})
	assert.Empty(t, text)
	assert.Empty(t, finish)
}

func TestToContents(t *testing.T) {
	out := toContents([]model.Message{
		{Role: consts.RoleSystem, Content: "start"},
		{Role: consts.RoleUser, Content: "ghar wale pareshan karte"},
		{Role: consts.RoleAi, Content: "main samajh sakti hun"},
		{Role: consts.RoleUser, Content: "  "},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "user", out[0].Role)
	assert.Equal(t, "model", out[1].Role)
}

func TestParseReport(t *testing.T) {
	r, err := parseReport("```json\n{\"keywords\":[\"family\"],\"content\":\"pressure at home\",\"suggestion\":[\"talk\"]}\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"family"}, r.Keywords)
	assert.Equal(t, "pressure at home", r.Content)

	_, err = parseReport("")
	assert.Error(t, err)
	_, err = parseReport("not json")
	assert.Error(t, err)
}

func TestNewChatApp_WithoutKey(t *testing.T) {
	_, err := newChatApp(context.Background(), &config.Gemini{})
	assert.ErrorIs(t, err, errNoApiKey)
}
