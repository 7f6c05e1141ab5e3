package config

import (
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var config *Config

type SMTP struct {
	Username string `json:",optional"`
	Password string `json:",optional"`
	Host     string `json:",optional"`
	Port     int    `json:",default=465"`
	Alert    string `json:",optional"`
}

type Config struct {
	service.ServiceConf
	ListenOn string
	Auth     Auth
	Mongo    struct {
		URL string
		DB  string
	}
	Cache    cache.CacheConf
	Redis    *redis.RedisConf
	RabbitMQ RabbitMQ
	SMTP     SMTP     `json:",optional"`
	Gemini   Gemini   `json:",optional"`
	Taxonomy Taxonomy `json:",optional"`
	Alert    Alert    `json:",optional"`
	Reply    Reply    `json:",optional"`
}

type Auth struct {
	SecretKey string
	PublicKey string `json:",optional"`
}

type RabbitMQ struct {
	Url string
}

// Gemini 对话与报告模型, ApiKey为空时只使用兜底回复
type Gemini struct {
	ApiKey      string  `json:",optional"`
	ChatModel   string  `json:",default=gemini-2.5-flash"`
	ReportModel string  `json:",default=gemini-2.5-flash"`
	Temperature float32 `json:",default=0.7"`
	MaxTokens   int32   `json:",default=1024"`
}

// Taxonomy 词表覆盖文件, 为空时使用内置词表
type Taxonomy struct {
	Path string `json:",optional"`
}

// Alert 危机预警
type Alert struct {
	Email   bool   `json:",default=true"`
	Webhook string `json:",optional"`
}

// Reply 兜底回复
type Reply struct {
	Seed uint64 `json:",optional"`
	// History 分析时参考的近期消息条数
	History int `json:",default=5"`
}

func NewConfig() (*Config, error) {
	c := new(Config)
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "etc/config.yaml"
	}
	err := conf.Load(path, c)
	if err != nil {
		return nil, err
	}
	err = c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
