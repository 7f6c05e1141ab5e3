package chat

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/psych-honey/biz/adaptor"
	"github.com/xh-polaris/psych-honey/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-honey/biz/adaptor/middleware"
	"github.com/xh-polaris/psych-honey/provider"
)

// ListHistory .
// @router /chat/history/list [GET]
func ListHistory(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.ListHistoryReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.HistoryService.ListHistory(ctx, middleware.UserId(c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetHistory .
// @router /chat/history/get [GET]
func GetHistory(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetHistoryReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.HistoryService.GetHistory(ctx, middleware.UserId(c), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
