package history

import (
	"context"
	"errors"
	"sync"

	"github.com/xh-polaris/psych-honey/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/config"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/util"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixHistoryCacheKey = "cache:history:"
	CollectionName        = "history"
)

var (
	Mapper *MongoMapper
	once   sync.Once
)

type IMongoMapper interface {
	Insert(ctx context.Context, his *History) error
	FindOne(ctx context.Context, id string) (*History, error)
	FindMany(ctx context.Context, userId string, p *cmd.Paging) (data []*History, total int64, err error)
}

var _ IMongoMapper = (*MongoMapper)(nil)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	once.Do(func() {
		conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
		Mapper = &MongoMapper{conn: conn}
	})
	return Mapper
}

// GetMongoMapper 获取单例, 需要先完成配置加载
func GetMongoMapper() *MongoMapper {
	return NewMongoMapper(config.GetConfig())
}

func (m *MongoMapper) Insert(ctx context.Context, his *History) error {
	if his.ID.IsZero() {
		his.ID = primitive.NewObjectID()
	}
	_, err := m.conn.InsertOneNoCache(ctx, his)
	return err
}

// FindOne 按id查询, 记录写入后不再修改, 可以使用缓存
func (m *MongoMapper) FindOne(ctx context.Context, id string) (*History, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	var his History
	err = m.conn.FindOne(ctx, prefixHistoryCacheKey+id, &his, bson.M{consts.ID: oid})
	switch {
	case err == nil:
		return &his, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindMany 分页查询某个用户的对话记录, 按开始时间倒序
func (m *MongoMapper) FindMany(ctx context.Context, userId string, p *cmd.Paging) (data []*History, total int64, err error) {
	skip, limit, err := util.ParsePaging(p)
	if err != nil {
		return nil, 0, err
	}
	filter := bson.M{consts.UserId: userId}
	data = make([]*History, 0, limit)
	err = m.conn.Find(ctx, &data,
		filter, &options.FindOptions{
			Skip:  &skip,
			Limit: &limit,
			Sort:  bson.M{consts.StartTime: -1},
		})
	if err != nil {
		return nil, 0, err
	}
	total, err = m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return data, total, nil
}
