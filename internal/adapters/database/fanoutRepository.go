package database

import (
	"context"
	"time"

	"chirper/internal/config"
	"chirper/internal/core/fanoutqueue"

	"github.com/gofrs/uuid"
)

type FanoutRepositoryDatabase struct{}

func NewFanoutRepositoryDatabase() *FanoutRepositoryDatabase {
	return &FanoutRepositoryDatabase{}
}

func (repo *FanoutRepositoryDatabase) Create(ctx context.Context, fanout *fanoutqueue.FanoutQueue) (*fanoutqueue.FanoutQueue, error) {
	if err := config.DB.Create(fanout).Error; err != nil {
		return nil, err
	}
	return fanout, nil
}

func (repo *FanoutRepositoryDatabase) GetPendingTweets(ctx context.Context, limit int64) ([]*fanoutqueue.FanoutQueue, error) {
	var fanouts []*fanoutqueue.FanoutQueue
	if err := config.DB.
		Where("status = ?", "pending").
		Limit(int(limit)).
		Find(&fanouts).Error; err != nil {
		return nil, err
	}
	return fanouts, nil
}

func (repo *FanoutRepositoryDatabase) MarkDone(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return config.DB.Model(&fanoutqueue.FanoutQueue{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": "done", "processed_at": &now}).Error
}
