package svc

import (
	"context"
	"fmt"

	"github.com/HuXin0817/fabric-claims/pkg/env"
	"github.com/HuXin0817/fabric-claims/pkg/models/message"
	"github.com/HuXin0817/fabric-claims/pkg/models/model"
	"github.com/HuXin0817/fabric-claims/pkg/models/pusher"
	"github.com/HuXin0817/fabric-claims/pkg/models/record"
	"github.com/HuXin0817/fabric-claims/serve/internal/config"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// ReportCache is the part of *redis.Redis the service relies on.
type ReportCache interface {
	GetCtx(ctx context.Context, key string) (string, error)
	SetexCtx(ctx context.Context, key, value string, seconds int) error
}

type Locker interface {
	Do(ctx context.Context, f func() error) error
}

type localLocker struct{}

func (localLocker) Do(_ context.Context, f func() error) error {
	return f()
}

type ServiceContext struct {
	Config config.Config
	// Cache and Recorder are nil when the matching store is not configured.
	Cache        ReportCache
	Recorder     record.ReportRecodeModel
	NewLocker    func(lockName string) Locker
	ReportPusher *pusher.Pusher[message.Report]
}

func NewServiceContext(c config.Config) *ServiceContext {
	svcCtx := &ServiceContext{
		Config:    c,
		NewLocker: func(string) Locker { return localLocker{} },
	}

	if c.WithRedis() {
		if c.Redis.Pass == "" {
			c.Redis.Pass = env.RedisPassWord
		}

		redisClient := redis.MustNewRedis(c.Redis)
		svcCtx.Cache = redisClient
		svcCtx.NewLocker = func(lockName string) Locker {
			return model.NewLock(redisClient, lockName, c.LockExpire)
		}
	}

	if c.WithMongo() {
		if c.MongoConf.PassWord == "" {
			c.MongoConf.PassWord = env.MongoPassWord
		}

		svcCtx.Recorder = record.NewReportRecodeModel(fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord), c.MongoConf.DataBaseName)
	}

	svcCtx.ReportPusher = NewReportPusher(c, svcCtx.Recorder)
	svcCtx.ReportPusher.Start()

	return svcCtx
}

// NewReportPusher batches finished reports into mongo. Without a recorder reports are dropped.
func NewReportPusher(c config.Config, recorder record.ReportRecodeModel) *pusher.Pusher[message.Report] {
	return pusher.NewPusher(
		pusher.WithPushInterval[message.Report](c.PushInterval),
		pusher.WithPushLogic(func(reports ...message.Report) error {
			if recorder == nil {
				return nil
			}

			recodes := make([]*record.ReportRecode, 0, len(reports))
			for _, r := range reports {
				recodes = append(recodes, record.NewReportRecode(r))
			}

			if err := recorder.InsertMany(context.Background(), recodes...); err != nil {
				return err
			}

			logx.Infof("recorded %d survey reports", len(recodes))
			return nil
		}),
	)
}

func (s *ServiceContext) Close() {
	s.ReportPusher.Stop()
}
