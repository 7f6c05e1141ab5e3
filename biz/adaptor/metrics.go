package adaptor

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/xh-polaris/gopkg/util/log"
)

// HTTPHandler 将net/http的handler适配为hertz handler, 用于暴露prometheus指标
func HTTPHandler(h http.Handler) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		req, err := adaptor.GetCompatRequest(&c.Request)
		if err != nil {
			log.CtxError(ctx, "convert request err: %v", err)
			c.String(hertz.StatusInternalServerError, hertz.StatusMessage(hertz.StatusInternalServerError))
			return
		}
		h.ServeHTTP(adaptor.GetCompatResponseWriter(&c.Response), req.WithContext(ctx))
	}
}
