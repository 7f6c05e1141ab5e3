package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xh-polaris/psych-honey/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
	"github.com/xh-polaris/psych-honey/biz/domain/reply"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/mapper/history"
)

type fakeMapper struct {
	data []*history.History
}

func (m *fakeMapper) Insert(_ context.Context, his *history.History) error {
	m.data = append(m.data, his)
	return nil
}

func (m *fakeMapper) FindOne(_ context.Context, id string) (*history.History, error) {
	for _, h := range m.data {
		if h.ID.Hex() == id {
			return h, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *fakeMapper) FindMany(_ context.Context, userId string, _ *cmd.Paging) ([]*history.History, int64, error) {
	var res []*history.History
	for _, h := range m.data {
		if h.UserId == userId {
			res = append(res, h)
		}
	}
	return res, int64(len(res)), nil
}

func newHistory(userId string) *history.History {
	start := time.Unix(1700000000, 0)
	return &history.History{
		ID:        primitive.NewObjectID(),
		SessionId: "s-" + userId,
		UserId:    userId,
		Dialogs: []*history.Dialog{
			{Role: consts.RoleAi, Content: "hi"},
			nil,
			{Role: consts.RoleUser, Content: "I want to kill myself", Emotion: "neutral", Level: "crisis",
				Topics: []string{"mental_health_suicidal"}},
		},
		Report: &history.Report{
			PeakLevel:   "crisis",
			CrisisTurns: 1,
			Strategies:  []string{analysis.StrategyCrisisIntervention},
		},
		StartTime: start,
		EndTime:   start.Add(time.Minute),
	}
}

func TestHistoryService(t *testing.T) {
	mine, other := newHistory("u1"), newHistory("u2")
	s := &HistoryService{HistoryMapper: &fakeMapper{data: []*history.History{mine, other}}}
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		resp, err := s.ListHistory(ctx, "u1", &cmd.ListHistoryReq{})
		require.NoError(t, err)
		require.Len(t, resp.History, 1)
		assert.EqualValues(t, 1, resp.Total)

		h := resp.History[0]
		assert.Equal(t, mine.ID.Hex(), h.ID)
		assert.Equal(t, int64(1700000000), h.StartTime)
		require.Len(t, h.Dialogs, 2)
		assert.Equal(t, "crisis", h.Dialogs[1].Level)
		assert.Equal(t, []string{"mental_health_suicidal"}, h.Dialogs[1].Topics)
		assert.Equal(t, "crisis", h.Report.PeakLevel)
		assert.Equal(t, 1, h.Report.CrisisTurns)
	})

	t.Run("get own", func(t *testing.T) {
		resp, err := s.GetHistory(ctx, "u1", &cmd.GetHistoryReq{Id: mine.ID.Hex()})
		require.NoError(t, err)
		assert.Equal(t, "s-u1", resp.History.SessionId)
	})

	t.Run("get others", func(t *testing.T) {
		_, err := s.GetHistory(ctx, "u1", &cmd.GetHistoryReq{Id: other.ID.Hex()})
		assert.ErrorIs(t, err, consts.ErrNotFound)
	})
}

type firstPicker struct{}

func (firstPicker) Pick(int) int { return 0 }

func TestAnalysisService(t *testing.T) {
	s := &AnalysisService{
		Analyzer: analysis.NewAnalyzer(analysis.NewStore(analysis.Default())),
		Book:     reply.NewBook(firstPicker{}),
	}

	resp, err := s.Analyze(context.Background(), &cmd.AnalyzeReq{Message: "I want to kill myself"})
	require.NoError(t, err)
	assert.Equal(t, analysis.LevelCrisis, resp.Record.Severity.Level)
	assert.Contains(t, resp.Reply, "9152987821")

	_, err = s.Analyze(context.Background(), &cmd.AnalyzeReq{Message: "\xff"})
	assert.ErrorIs(t, err, consts.ErrInvalidText)
}
