package domain

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/xh-polaris/psych-honey/biz/application/dto"
	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
)

func newTestRedisHelper(t *testing.T) (*RedisHelper, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r := redis.MustNewRedis(redis.RedisConf{Host: mr.Addr(), Type: redis.NodeType})
	return newRedisHelper(r), mr
}

func TestRedisHelper_AddAndLoad(t *testing.T) {
	h, mr := newTestRedisHelper(t)
	session := "s-1"

	require.NoError(t, h.AddSystem(session, "start"))
	require.NoError(t, h.AddUser(session, "ghar wale pareshan karte", &dto.AnalysisSummary{
		Emotion: "family_stress", Level: "medium", Topics: []string{},
	}))
	require.NoError(t, h.AddAi(session, "main samajh sakti hun"))

	his, err := h.Load(session)
	require.NoError(t, err)
	require.Len(t, his, 3)
	assert.Equal(t, consts.RoleSystem, his[0].Role)
	assert.Equal(t, consts.RoleUser, his[1].Role)
	assert.Equal(t, "family_stress", his[1].Analysis.Emotion)
	assert.Nil(t, his[2].Analysis)
	assert.True(t, mr.TTL(session) > 0)

	require.NoError(t, h.Remove(session))
	his, err = h.Load(session)
	require.NoError(t, err)
	assert.Empty(t, his)
}

func TestRedisHelper_Recent(t *testing.T) {
	h, _ := newTestRedisHelper(t)
	session := "s-2"

	levels := []string{"low", "medium", "crisis", "high"}
	for i, l := range levels {
		require.NoError(t, h.AddUser(session, "msg", &dto.AnalysisSummary{Emotion: "sad", Level: l}))
		if i%2 == 0 {
			require.NoError(t, h.AddAi(session, "reply"))
		}
	}

	items, err := h.Recent(session, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, analysis.LevelCrisis, items[0].Level)
	assert.Equal(t, analysis.LevelHigh, items[1].Level)

	items, err = h.Recent(session, 10)
	require.NoError(t, err)
	assert.Len(t, items, 4)

	items, err = h.Recent("missing", 3)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = h.Recent(session, 0)
	require.NoError(t, err)
	assert.Nil(t, items)
}
