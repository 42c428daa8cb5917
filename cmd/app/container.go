package main

import (
	"net/http"
	"os"
	"strconv"

	dbadapter "chirper/internal/adapters/database"
	gqladapter "chirper/internal/adapters/graphql"
	"chirper/internal/adapters/httpapi"
	redisadapter "chirper/internal/adapters/redis"
	"chirper/internal/config"
	followapp "chirper/internal/core/follow/service"
	likeapp "chirper/internal/core/like/service"
	retweetapp "chirper/internal/core/retweet/service"
	timelineapp "chirper/internal/core/timeline/service"
	tweetapp "chirper/internal/core/tweet/service"
	userapp "chirper/internal/core/user/service"
	fanoutPort "chirper/internal/ports/fanoutqueue"
	followPort "chirper/internal/ports/follow"
	likePort "chirper/internal/ports/like"
	retweetPort "chirper/internal/ports/retweet"
	timelinePort "chirper/internal/ports/timeline"
	tweetPort "chirper/internal/ports/tweet"
	userPort "chirper/internal/ports/user"
	"chirper/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/dig"
)

func ProvideUserRepository() userPort.UserRepository {
	return dbadapter.NewUserRepositoryDatabase()
}

func ProvideTweetRepository() tweetPort.TweetRepository {
	return dbadapter.NewTweetRepositoryDatabase()
}

func ProvideFollowRepository() followPort.FollowRepository {
	return dbadapter.NewFollowRepositoryDatabase()
}

func ProvideLikeRepository() likePort.LikeRepository {
	return dbadapter.NewLikeRepositoryDatabase()
}

func ProvideRetweetRepository() retweetPort.RetweetRepository {
	return dbadapter.NewRetweetRepositoryDatabase()
}

func ProvideTimelineRepository() timelinePort.TimelineRepository {
	return dbadapter.NewTimelineRepositoryDatabase()
}

func ProvideFanoutRepository() fanoutPort.FanoutRepository {
	return dbadapter.NewFanoutRepositoryDatabase()
}

func ProvideFanoutRedis() fanoutPort.FanoutRedis {
	return redisadapter.NewFanoutRepositoryRedis(config.RedisClient)
}

func ProvideUserService(repo userPort.UserRepository) *userapp.UserService {
	return userapp.NewUserService(repo, []byte(os.Getenv("JWT_SECRET")))
}

func ProvideTweetService(
	tweetRepo tweetPort.TweetRepository,
	fanoutRepo fanoutPort.FanoutRepository,
	fanoutRedis fanoutPort.FanoutRedis,
	followRepo followPort.FollowRepository,
	timelineRepo timelinePort.TimelineRepository,
) *tweetapp.TweetService {
	return tweetapp.NewTweetService(tweetRepo, fanoutRepo, fanoutRedis, followRepo, timelineRepo)
}

func ProvideFollowService(repo followPort.FollowRepository) *followapp.FollowService {
	return followapp.NewFollowService(repo)
}

func ProvideLikeService(likeRepo likePort.LikeRepository, tweetRepo tweetPort.TweetRepository) *likeapp.LikeService {
	return likeapp.NewLikeService(likeRepo, tweetRepo)
}

func ProvideRetweetService(retweetRepo retweetPort.RetweetRepository, tweetRepo tweetPort.TweetRepository) *retweetapp.RetweetService {
	return retweetapp.NewRetweetService(retweetRepo, tweetRepo)
}

func ProvideTimelineService(timelineRepo timelinePort.TimelineRepository) *timelineapp.TimelineService {
	return timelineapp.NewTimelineService(timelineRepo)
}

func ProvideResolver(
	userSvc *userapp.UserService,
	tweetSvc *tweetapp.TweetService,
	followSvc *followapp.FollowService,
	likeSvc *likeapp.LikeService,
	retweetSvc *retweetapp.RetweetService,
	timelineSvc *timelineapp.TimelineService,
) *gqladapter.Resolver {
	return &gqladapter.Resolver{
		Users:    userSvc,
		Tweets:   tweetSvc,
		Follows:  followSvc,
		Likes:    likeSvc,
		Retweets: retweetSvc,
		Timeline: timelineSvc,
	}
}

func ProvideSchema(r *gqladapter.Resolver) (graphql.Schema, error) {
	return gqladapter.NewSchema(r)
}

func ProvideGraphQLHandler(schema graphql.Schema) http.Handler {
	return gqladapter.NewHandler(&schema)
}

func ProvideEngine(userSvc *userapp.UserService, graphqlHandler http.Handler) *gin.Engine {
	return httpapi.SetupRoutes(userSvc, graphqlHandler)
}

func ProvideFanoutWorker(
	fanoutRepo fanoutPort.FanoutRepository,
	fanoutRedis fanoutPort.FanoutRedis,
	followRepo followPort.FollowRepository,
	timelineRepo timelinePort.TimelineRepository,
) *workers.FanoutWorker {
	batchSize, err := strconv.Atoi(os.Getenv("BATCH_SIZE"))
	if err != nil || batchSize <= 0 {
		batchSize = 100
	}
	return workers.NewFanoutWorker(fanoutRepo, fanoutRedis, followRepo, timelineRepo, batchSize, config.Logger)
}

// BuildContainer wires the repositories, services, schema and worker.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []interface{}{
		ProvideUserRepository,
		ProvideTweetRepository,
		ProvideFollowRepository,
		ProvideLikeRepository,
		ProvideRetweetRepository,
		ProvideTimelineRepository,
		ProvideFanoutRepository,
		ProvideFanoutRedis,
		ProvideUserService,
		ProvideTweetService,
		ProvideFollowService,
		ProvideLikeService,
		ProvideRetweetService,
		ProvideTimelineService,
		ProvideResolver,
		ProvideSchema,
		ProvideGraphQLHandler,
		ProvideEngine,
		ProvideFanoutWorker,
	}

	for _, p := range providers {
		if err := container.Provide(p); err != nil {
			return nil, err
		}
	}

	return container, nil
}
