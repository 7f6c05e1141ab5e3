package router

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/xh-polaris/psych-honey/biz/adaptor/middleware"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/config"
)

var tracingCfg *tracing.Config

// SetTracing 设置链路追踪配置, 需要在Register之前调用
func SetTracing(cfg *tracing.Config) {
	tracingCfg = cfg
}

func _rootMw() []app.HandlerFunc {
	if tracingCfg == nil {
		return nil
	}
	return []app.HandlerFunc{tracing.ServerMiddleware(tracingCfg)}
}

func _chatMw() []app.HandlerFunc {
	return []app.HandlerFunc{middleware.JWTAuth(&config.GetConfig().Auth)}
}

func _longchatMw() []app.HandlerFunc {
	return nil
}

func _analysisMw() []app.HandlerFunc {
	return []app.HandlerFunc{middleware.JWTAuth(&config.GetConfig().Auth)}
}
