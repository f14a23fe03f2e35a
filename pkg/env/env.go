package env

import "os"

// Secrets are read from the environment when the config file leaves them empty.
var (
	RedisPassWord = os.Getenv("FABRIC_REDIS_PASSWORD")
	MongoPassWord = os.Getenv("FABRIC_MONGO_PASSWORD")
)
