package main

import (
	"context"
	"os"

	"chirper/internal/config"
	"chirper/internal/core/fanoutqueue"
	"chirper/internal/core/follow"
	"chirper/internal/core/like"
	"chirper/internal/core/retweet"
	"chirper/internal/core/timeline"
	"chirper/internal/core/tweet"
	"chirper/internal/core/user"
	"chirper/internal/workers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&tweet.Tweet{},
		&follow.Follow{},
		&like.Like{},
		&retweet.Retweet{},
		&timeline.Timeline{},
		&fanoutqueue.FanoutQueue{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}

	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	container, err := BuildContainer()
	if err != nil {
		config.Logger.Fatal("Failed to build container:", zap.Error(err))
	}

	err = container.Invoke(func(r *gin.Engine, fanoutWorker *workers.FanoutWorker) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go fanoutWorker.Run(ctx)

		if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
			config.Logger.Fatal("Server failed to start:", zap.Error(err))
		}
	})
	if err != nil {
		config.Logger.Fatal("Failed to start app:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
