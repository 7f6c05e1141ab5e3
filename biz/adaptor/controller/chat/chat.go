package chat

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/websocket"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-honey/biz/adaptor"
	"github.com/xh-polaris/psych-honey/biz/adaptor/middleware"
	"github.com/xh-polaris/psych-honey/provider"
)

// LongChat 开启一轮长对话
// @router /chat/ [GET]
func LongChat(ctx context.Context, c *app.RequestContext) {
	userId := middleware.UserId(c)
	p := provider.Get()
	err := adaptor.UpgradeWs(ctx, c, func(ctx context.Context, conn *websocket.Conn) {
		p.ChatService.Handle(ctx, conn, userId)
	})
	if err != nil {
		log.Error(err.Error())
	}
}
