package main

import (
	"net/http"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-honey/biz/adaptor/router"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/mq"
	"github.com/xh-polaris/psych-honey/provider"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func Init() {
	provider.Init()
	http.DefaultTransport = otelhttp.NewTransport(http.DefaultTransport)
}

func main() {
	Init()
	c := provider.Get().Config

	tracer, cfg := tracing.NewServerTracer()
	router.SetTracing(cfg)
	h := server.New(server.WithHostPorts(c.ListenOn), tracer)
	router.Register(h)

	// 对话结束后的报告生成
	go mq.Consume()

	log.Info("server start at %s", c.ListenOn)
	h.Spin()
}
