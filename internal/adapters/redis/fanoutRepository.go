package redis

import (
	"context"
	"time"

	"chirper/internal/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type FanoutRepositoryRedis struct {
	Client *redis.Client
}

func NewFanoutRepositoryRedis(client *redis.Client) *FanoutRepositoryRedis {
	return &FanoutRepositoryRedis{
		Client: client,
	}
}

// PushTweetToFollowers adds tweetID to the timeline ZSET of every follower,
// scored by the current time so ZRevRange yields newest-first.
func (r *FanoutRepositoryRedis) PushTweetToFollowers(ctx context.Context, tweetID string, followerIDs []string) error {
	for _, followerID := range followerIDs {
		key := "timeline:" + followerID

		z := &redis.Z{
			Score:  float64(time.Now().Unix()),
			Member: tweetID,
		}

		if err := r.Client.ZAdd(ctx, key, z).Err(); err != nil {
			return err
		}

		config.Logger.Debug("Added tweet to timeline", zap.String("tweetID", tweetID), zap.String("timelineKey", key))
	}

	return nil
}
