package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xh-polaris/psych-honey/biz/adaptor"
	"github.com/xh-polaris/psych-honey/biz/adaptor/controller/analysis"
	"github.com/xh-polaris/psych-honey/biz/adaptor/controller/chat"
)

func Register(r *server.Hertz) {
	r.GET("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	root := r.Group("/", _rootMw()...)
	{
		_chat := root.Group("/chat", _chatMw()...)
		_chat.GET("/", append(_longchatMw(), chat.LongChat)...)
		_chat.GET("/history/list", chat.ListHistory)
		_chat.GET("/history/get", chat.GetHistory)
	}
	{
		_analysis := root.Group("/analysis", _analysisMw()...)
		_analysis.POST("/", analysis.Analyze)
	}
}
