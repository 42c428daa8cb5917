package workers

import (
	"context"
	"time"

	"chirper/internal/core/fanoutqueue"
	timelineEntity "chirper/internal/core/timeline"
	fanoutPort "chirper/internal/ports/fanoutqueue"
	followPort "chirper/internal/ports/follow"
	timelinePort "chirper/internal/ports/timeline"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// FanoutWorker drains the fanout queue: for every pending tweet it pushes the
// tweet ID into each follower's timeline ZSET and records the materialized
// timeline rows, in batches of BatchSize.
type FanoutWorker struct {
	FanoutRepo   fanoutPort.FanoutRepository
	FanoutRedis  fanoutPort.FanoutRedis
	FollowRepo   followPort.FollowRepository
	TimelineRepo timelinePort.TimelineRepository
	BatchSize    int
	Logger       *zap.Logger
}

func NewFanoutWorker(
	fanoutRepo fanoutPort.FanoutRepository,
	fanoutRedis fanoutPort.FanoutRedis,
	followRepo followPort.FollowRepository,
	timelineRepo timelinePort.TimelineRepository,
	batchSize int,
	logger *zap.Logger,
) *FanoutWorker {
	return &FanoutWorker{
		FanoutRepo:   fanoutRepo,
		FanoutRedis:  fanoutRedis,
		FollowRepo:   followRepo,
		TimelineRepo: timelineRepo,
		BatchSize:    batchSize,
		Logger:       logger,
	}
}

// Run polls for pending fanout records until the context is cancelled.
func (w *FanoutWorker) Run(ctx context.Context) {
	w.Logger.Info("🚀 FanoutWorker started")
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("🛑 Fanout worker stopped")
			return
		default:
			pending, err := w.FanoutRepo.GetPendingTweets(ctx, int64(w.BatchSize))
			if err != nil {
				w.Logger.Error("❌ Error fetching pending tweets:", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			for _, fq := range pending {
				w.processFanout(ctx, fq)
			}

			time.Sleep(1000 * time.Millisecond)
		}
	}
}

func (w *FanoutWorker) processFanout(ctx context.Context, fq *fanoutqueue.FanoutQueue) {
	if fq == nil || fq.TweetID == uuid.Nil || fq.UserID == uuid.Nil {
		w.Logger.Error("❌ Invalid FanoutQueue record:", zap.Any("record", fq))
		return
	}

	w.Logger.Info("➡ Processing fanout", zap.String("TweetID", fq.TweetID.String()), zap.String("AuthorID", fq.UserID.String()))

	followers, err := w.FollowRepo.GetFollowersByUserID(ctx, fq.UserID.String())
	if err != nil {
		w.Logger.Error("❌ Error fetching followers:", zap.Error(err))
		return
	}

	if len(followers) == 0 {
		if err := w.FanoutRepo.MarkDone(ctx, fq.ID); err != nil {
			w.Logger.Warn("⚠️ Could not mark fanout record done:", zap.Error(err))
		}
		return
	}

	var followerIDs []string
	for _, f := range followers {
		followerIDs = append(followerIDs, f.FollowerID.String())
	}

	for i := 0; i < len(followerIDs); i += w.BatchSize {
		end := min(i+w.BatchSize, len(followerIDs))
		batch := followerIDs[i:end]

		if err := w.FanoutRedis.PushTweetToFollowers(ctx, fq.TweetID.String(), batch); err != nil {
			w.Logger.Error("❌ Error pushing batch to ZSET:", zap.Error(err))
		}

		w.addTimelines(ctx, fq, batch)
	}

	if err := w.FanoutRepo.MarkDone(ctx, fq.ID); err != nil {
		w.Logger.Warn("⚠️ Could not mark fanout record done:", zap.Error(err))
	} else {
		w.Logger.Info("✅ Fanout completed", zap.String("TweetID", fq.TweetID.String()), zap.Int("Followers", len(followerIDs)))
	}
}

func (w *FanoutWorker) addTimelines(ctx context.Context, fq *fanoutqueue.FanoutQueue, batch []string) {
	var timelines []*timelineEntity.Timeline
	for _, fid := range batch {
		timelines = append(timelines, &timelineEntity.Timeline{
			ID:      uuid.Must(uuid.NewV4()),
			UserID:  uuid.FromStringOrNil(fid),
			TweetID: fq.TweetID,
		})
	}

	if err := w.TimelineRepo.AddBatch(ctx, timelines); err != nil {
		w.Logger.Warn("⚠️ Could not add batch to timeline", zap.Error(err))
	}
}
