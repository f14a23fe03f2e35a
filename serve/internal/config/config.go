package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	service.ServiceConf
	ListenOn     string
	MaxBodyBytes int64           `json:",default=8388608"`
	MaxClaimArea int             `json:",default=1048576"`
	CacheSeconds int             `json:",default=600"`
	LockExpire   time.Duration   `json:",default=30s"`
	PushInterval time.Duration   `json:",default=1s"`
	Redis        redis.RedisConf `json:",optional"`
	MongoConf    struct {
		Url          string `json:",optional"`
		DataBaseName string `json:",default=fabric"`
		PassWord     string `json:",optional"`
	} `json:",optional"`
}

func (c Config) WithRedis() bool {
	return c.Redis.Host != ""
}

func (c Config) WithMongo() bool {
	return c.MongoConf.Url != ""
}
