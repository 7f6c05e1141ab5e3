package analysis

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/psych-honey/biz/adaptor"
	"github.com/xh-polaris/psych-honey/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-honey/provider"
)

// Analyze 分析单条消息
// @router /analysis/ [POST]
func Analyze(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.AnalyzeReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.AnalysisService.Analyze(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
