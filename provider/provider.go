package provider

import (
	"time"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xh-polaris/psych-honey/biz/application/service"
	"github.com/xh-polaris/psych-honey/biz/domain"
	"github.com/xh-polaris/psych-honey/biz/domain/alert"
	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
	"github.com/xh-polaris/psych-honey/biz/domain/model/gemini"
	"github.com/xh-polaris/psych-honey/biz/domain/reply"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/config"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/mapper/history"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/metrics"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config          *config.Config
	ChatService     service.IChatService
	HistoryService  service.IHistoryService
	AnalysisService service.IAnalysisService
}

func Get() *Provider {
	return provider
}

// NewTaxonomyStore 加载词表, 未配置覆盖文件时使用内置词表
func NewTaxonomyStore(c *config.Config) (*analysis.Store, error) {
	return analysis.LoadStore(c.Taxonomy.Path)
}

// NewPicker 兜底回复的随机源, 配置了种子时回复可复现
func NewPicker(c *config.Config) reply.Picker {
	seed := c.Reply.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return reply.NewRandPicker(seed)
}

func NewMetrics() *metrics.AnalysisMetrics {
	return metrics.NewAnalysisMetrics(prometheus.DefaultRegisterer)
}

var ApplicationSet = wire.NewSet(
	service.ChatServiceSet,
	service.HistoryServiceSet,
	service.AnalysisServiceSet,
)

var DomainSet = wire.NewSet(
	NewTaxonomyStore,
	analysis.NewAnalyzer,
	NewPicker,
	reply.NewBook,
	gemini.NewChatApp,
	domain.NewRedisHelper,
	alert.NewAlerter,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	NewMetrics,
	history.NewMongoMapper,
	wire.Bind(new(history.IMongoMapper), new(*history.MongoMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	DomainSet,
	InfrastructureSet,
)
