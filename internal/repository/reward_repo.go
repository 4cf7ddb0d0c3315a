package repository

import (
	"context"
	"time"

	"incentivehub/internal/model"

	"github.com/google/uuid"
)

// RewardRepository defines data access for the rewards catalog.
type RewardRepository interface {
	Create(ctx context.Context, reward *model.Reward) error
	GetByID(ctx context.Context, id string) (*model.Reward, error)
	List(ctx context.Context) ([]model.Reward, error)
	Update(ctx context.Context, reward *model.Reward) error
	Delete(ctx context.Context, id string) error
}

type rewardRepository struct {
	rewards *collection[model.Reward]
}

// NewRewardRepository returns an empty in-memory reward store.
func NewRewardRepository() RewardRepository {
	return &rewardRepository{rewards: newCollection[model.Reward]()}
}

func (r *rewardRepository) Create(_ context.Context, reward *model.Reward) error {
	if reward.ID == "" {
		reward.ID = uuid.NewString()
	}
	now := time.Now()
	reward.CreatedAt = now
	reward.UpdatedAt = now
	r.rewards.insert(reward.ID, *reward)
	return nil
}

func (r *rewardRepository) GetByID(_ context.Context, id string) (*model.Reward, error) {
	reward, err := r.rewards.get(id)
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

func (r *rewardRepository) List(_ context.Context) ([]model.Reward, error) {
	return r.rewards.list(), nil
}

func (r *rewardRepository) Update(_ context.Context, reward *model.Reward) error {
	reward.UpdatedAt = time.Now()
	return r.rewards.update(reward.ID, *reward)
}

func (r *rewardRepository) Delete(_ context.Context, id string) error {
	return r.rewards.remove(id)
}
