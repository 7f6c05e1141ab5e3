package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/wire"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-honey/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-honey/biz/domain/analysis"
	"github.com/xh-polaris/psych-honey/biz/domain/reply"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/metrics"
)

type IAnalysisService interface {
	Analyze(ctx context.Context, req *cmd.AnalyzeReq) (*cmd.AnalyzeResp, error)
}

type AnalysisService struct {
	Analyzer *analysis.Analyzer
	Book     *reply.Book
	Metrics  *metrics.AnalysisMetrics
}

var AnalysisServiceSet = wire.NewSet(
	wire.Struct(new(AnalysisService), "*"),
	wire.Bind(new(IAnalysisService), new(*AnalysisService)),
)

// Analyze 分析单条消息并给出模板回复, 不产生预警和记录
func (s *AnalysisService) Analyze(ctx context.Context, req *cmd.AnalyzeReq) (*cmd.AnalyzeResp, error) {
	begin := time.Now()
	r, err := s.Analyzer.Analyze(req.Message, req.History)
	if errors.Is(err, analysis.ErrInvalidText) {
		return nil, consts.ErrInvalidText
	}
	if err != nil {
		return nil, err
	}
	s.Metrics.ObserveAnalysis(string(r.Severity.Level), r.Strategy.PrimaryStrategies, time.Since(begin).Seconds())
	log.CtxInfo(ctx, "[analysis] level=%s, emotion=%s, strategies=%v", r.Severity.Level, r.DominantEmotion,
		r.Strategy.PrimaryStrategies)
	return &cmd.AnalyzeResp{
		Code:   0,
		Msg:    "success",
		Record: r,
		Reply:  s.Book.Compose(r),
	}, nil
}
