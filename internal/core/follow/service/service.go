package followapp

import (
	"context"
	"errors"

	"chirper/internal/config"
	followEntity "chirper/internal/core/follow"
	userEntity "chirper/internal/core/user"
	followPort "chirper/internal/ports/follow"
	userPort "chirper/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// FollowService manages the follow graph.
type FollowService struct {
	FollowRepository followPort.FollowRepository
}

func NewFollowService(repo followPort.FollowRepository) *FollowService {
	return &FollowService{
		FollowRepository: repo,
	}
}

// FollowUser creates a follow edge. Self-follows and duplicates are rejected;
// the composite unique index catches races the pre-check misses.
func (s *FollowService) FollowUser(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		config.Logger.Warn("⚠️ Cannot follow yourself", zap.String("userID", followerID))
		return errors.New("cannot follow yourself")
	}

	already, err := s.FollowRepository.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if already {
		return errors.New("already following this user")
	}

	edge := &followEntity.Follow{
		ID:         uuid.Must(uuid.NewV4()),
		UserID:     uuid.FromStringOrNil(followeeID),
		FollowerID: uuid.FromStringOrNil(followerID),
	}

	_, err = s.FollowRepository.FollowUser(ctx, edge)
	return err
}

// UnfollowUser removes a follow edge if it exists.
func (s *FollowService) UnfollowUser(ctx context.Context, followerID, followeeID string) error {
	following, err := s.FollowRepository.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !following {
		return errors.New("not following this user")
	}

	return s.FollowRepository.UnfollowUser(ctx, followerID, followeeID)
}

// GetFollowersByUserID returns the users following userID.
func (s *FollowService) GetFollowersByUserID(ctx context.Context, userID string) ([]*userPort.UserDTO, error) {
	edges, err := s.FollowRepository.GetFollowersByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	users := make([]*userPort.UserDTO, 0, len(edges))
	for _, e := range edges {
		users = append(users, toUserDTO(&e.Follower))
	}
	return users, nil
}

// GetFollowingByUserID returns the users that userID follows.
func (s *FollowService) GetFollowingByUserID(ctx context.Context, userID string) ([]*userPort.UserDTO, error) {
	edges, err := s.FollowRepository.GetFollowingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	users := make([]*userPort.UserDTO, 0, len(edges))
	for _, e := range edges {
		users = append(users, toUserDTO(&e.User))
	}
	return users, nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	return s.FollowRepository.IsFollowing(ctx, followerID, followeeID)
}

func (s *FollowService) CountFollowers(ctx context.Context, userID string) (int64, error) {
	return s.FollowRepository.CountFollowers(ctx, userID)
}

func (s *FollowService) CountFollowing(ctx context.Context, userID string) (int64, error) {
	return s.FollowRepository.CountFollowing(ctx, userID)
}

func toUserDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:       u.ID.String(),
		Name:     u.Name,
		Bio:      u.Bio,
		Username: u.Username,
		Email:    u.Email,
	}
}
