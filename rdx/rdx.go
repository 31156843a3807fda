package rdx

import (
	"os"
	"time"

	"antojos/globals"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// redisAddr resolves the Redis address from the environment.
func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func init() {
	// .env must be loaded before the address is read; init runs before main
	_ = godotenv.Load()
	Conn = redis.NewClient(&redis.Options{
		Addr: redisAddr(),
	})
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}
