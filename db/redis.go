package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const (
	SeenLinkKeyPrefix = "newsdigest:seen:"
	seenLinkTTL       = 7 * 24 * time.Hour
)

func ConnectRedis(redisURL string) error {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// MarkLinkSeen records a crawled article link. Returns true if the link
// was not seen before.
func MarkLinkSeen(link string) (bool, error) {
	return Redis.SetNX(Ctx, SeenLinkKeyPrefix+link, "1", seenLinkTTL).Result()
}

func WasLinkSeen(link string) (bool, error) {
	n, err := Redis.Exists(Ctx, SeenLinkKeyPrefix+link).Result()
	return n > 0, err
}
