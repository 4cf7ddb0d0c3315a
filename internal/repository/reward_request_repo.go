package repository

import (
	"context"
	"time"

	"incentivehub/internal/model"

	"github.com/google/uuid"
)

// RewardRequestRepository defines data access for redemption requests.
type RewardRequestRepository interface {
	Create(ctx context.Context, request *model.RewardRequest) error
	GetByID(ctx context.Context, id string) (*model.RewardRequest, error)
	List(ctx context.Context) ([]model.RewardRequest, error)
	ListByUser(ctx context.Context, userID string) ([]model.RewardRequest, error)
	Update(ctx context.Context, request *model.RewardRequest) error
}

type rewardRequestRepository struct {
	requests *collection[model.RewardRequest]
}

// NewRewardRequestRepository returns an empty in-memory redemption store.
func NewRewardRequestRepository() RewardRequestRepository {
	return &rewardRequestRepository{requests: newCollection[model.RewardRequest]()}
}

func (r *rewardRequestRepository) Create(_ context.Context, request *model.RewardRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	request.UpdatedAt = time.Now()
	r.requests.insert(request.ID, *request)
	return nil
}

func (r *rewardRequestRepository) GetByID(_ context.Context, id string) (*model.RewardRequest, error) {
	request, err := r.requests.get(id)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *rewardRequestRepository) List(_ context.Context) ([]model.RewardRequest, error) {
	return r.requests.list(), nil
}

func (r *rewardRequestRepository) ListByUser(_ context.Context, userID string) ([]model.RewardRequest, error) {
	return r.requests.filter(func(q model.RewardRequest) bool { return q.UserID == userID }), nil
}

func (r *rewardRequestRepository) Update(_ context.Context, request *model.RewardRequest) error {
	request.UpdatedAt = time.Now()
	return r.requests.update(request.ID, *request)
}
