package service

import (
	"context"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/xh-polaris/psych-honey/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/mapper/history"
)

type IHistoryService interface {
	ListHistory(ctx context.Context, userId string, req *cmd.ListHistoryReq) (*cmd.ListHistoryResp, error)
	GetHistory(ctx context.Context, userId string, req *cmd.GetHistoryReq) (*cmd.GetHistoryResp, error)
}

type HistoryService struct {
	HistoryMapper history.IMongoMapper
}

var HistoryServiceSet = wire.NewSet(
	wire.Struct(new(HistoryService), "*"),
	wire.Bind(new(IHistoryService), new(*HistoryService)),
)

func (s *HistoryService) ListHistory(ctx context.Context, userId string, req *cmd.ListHistoryReq) (*cmd.ListHistoryResp, error) {
	data, total, err := s.HistoryMapper.FindMany(ctx, userId, &req.Paging)
	if err != nil {
		return nil, err
	}

	his := make([]*cmd.History, 0, len(data))
	for _, h := range data {
		ch, err := toHistory(h)
		if err != nil {
			return nil, err
		}
		his = append(his, ch)
	}
	return &cmd.ListHistoryResp{
		Code:    0,
		Msg:     "success",
		History: his,
		Total:   total,
	}, nil
}

// GetHistory 查询单条记录, 不属于当前用户的记录按不存在处理
func (s *HistoryService) GetHistory(ctx context.Context, userId string, req *cmd.GetHistoryReq) (*cmd.GetHistoryResp, error) {
	h, err := s.HistoryMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if h.UserId != userId {
		return nil, consts.ErrNotFound
	}
	ch, err := toHistory(h)
	if err != nil {
		return nil, err
	}
	return &cmd.GetHistoryResp{
		Code:    0,
		Msg:     "success",
		History: ch,
	}, nil
}

func toHistory(h *history.History) (*cmd.History, error) {
	dia := make([]*cmd.Dialog, 0, len(h.Dialogs))
	for _, d := range h.Dialogs {
		if d == nil {
			continue
		}
		cd := &cmd.Dialog{}
		if err := copier.Copy(cd, d); err != nil {
			return nil, err
		}
		dia = append(dia, cd)
	}
	ch := &cmd.History{
		ID:        h.ID.Hex(),
		SessionId: h.SessionId,
		Dialogs:   dia,
		StartTime: h.StartTime.Unix(),
		EndTime:   h.EndTime.Unix(),
		Report:    &cmd.Report{},
	}
	if h.Report != nil {
		if err := copier.Copy(ch.Report, h.Report); err != nil {
			return nil, err
		}
	}
	return ch, nil
}
