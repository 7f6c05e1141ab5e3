package domain

import (
	"encoding/json"
	"sync"

	"github.com/xh-polaris/psych-honey/biz/application/dto"
	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/config"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
	rs "github.com/xh-polaris/psych-honey/biz/infrastructure/redis"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// sessionTTL 对话记录在redis中的保留时间, 正常情况下会在生成报告后删除
const sessionTTL = 24 * 60 * 60

var (
	instance *RedisHelper
	once     sync.Once
)

// RedisHelper 按session缓存对话记录
type RedisHelper struct {
	rs *redis.Redis
}

func NewRedisHelper(c *config.Config) *RedisHelper {
	once.Do(func() {
		instance = newRedisHelper(rs.NewRedis(c))
	})
	return instance
}

func newRedisHelper(r *redis.Redis) *RedisHelper {
	return &RedisHelper{rs: r}
}

// GetRedisHelper 获取单例, 需要先完成配置加载
func GetRedisHelper() *RedisHelper {
	return NewRedisHelper(config.GetConfig())
}

// AddAi 添加ai对话记录
func (r *RedisHelper) AddAi(sessionId, msg string) error {
	return r.add(sessionId, &dto.ChatHistory{Role: consts.RoleAi, Content: msg})
}

// AddUser 添加用户对话记录及其分析摘要
func (r *RedisHelper) AddUser(sessionId, msg string, summary *dto.AnalysisSummary) error {
	return r.add(sessionId, &dto.ChatHistory{Role: consts.RoleUser, Content: msg, Analysis: summary})
}

// AddSystem 添加系统对话记录
func (r *RedisHelper) AddSystem(sessionId, msg string) error {
	return r.add(sessionId, &dto.ChatHistory{Role: consts.RoleSystem, Content: msg})
}

// add 将对话记录添加到队列尾部
func (r *RedisHelper) add(sessionId string, history *dto.ChatHistory) error {
	data, err := json.Marshal(history)
	if err != nil {
		return err
	}
	if _, err = r.rs.Rpush(sessionId, string(data)); err != nil {
		return err
	}
	return r.rs.Expire(sessionId, sessionTTL)
}

// Load 获取session对应的所有对话记录
func (r *RedisHelper) Load(sessionId string) ([]*dto.ChatHistory, error) {
	data, err := r.rs.Lrange(sessionId, 0, -1)
	if err != nil {
		return nil, err
	}

	history := make([]*dto.ChatHistory, 0, len(data))
	for _, v := range data {
		var his dto.ChatHistory
		if err = json.Unmarshal([]byte(v), &his); err != nil {
			return nil, err
		}
		history = append(history, &his)
	}
	return history, nil
}

// Recent 最近n条用户消息的分析摘要, 按时间正序
func (r *RedisHelper) Recent(sessionId string, n int) ([]analysis.HistoryItem, error) {
	if n <= 0 {
		return nil, nil
	}
	history, err := r.Load(sessionId)
	if err != nil {
		return nil, err
	}
	items := make([]analysis.HistoryItem, 0, n)
	for i := len(history) - 1; i >= 0 && len(items) < n; i-- {
		if history[i].Role == consts.RoleUser && history[i].Analysis != nil {
			items = append(items, history[i].Analysis.HistoryItem())
		}
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items, nil
}

// Remove 删除Session对应的记录
func (r *RedisHelper) Remove(sessionId string) error {
	_, err := r.rs.Del(sessionId)
	return err
}
