package repository

import (
	"context"
	"time"

	"incentivehub/internal/model"

	"github.com/google/uuid"
)

// TrainingRepository defines data access for training requests.
type TrainingRepository interface {
	Create(ctx context.Context, training *model.TrainingRequest) error
	GetByID(ctx context.Context, id string) (*model.TrainingRequest, error)
	List(ctx context.Context) ([]model.TrainingRequest, error)
	ListBySeller(ctx context.Context, sellerID string) ([]model.TrainingRequest, error)
	ListByStatus(ctx context.Context, status string) ([]model.TrainingRequest, error)
	Update(ctx context.Context, training *model.TrainingRequest) error
}

type trainingRepository struct {
	trainings *collection[model.TrainingRequest]
}

// NewTrainingRepository returns an empty in-memory training request store.
func NewTrainingRepository() TrainingRepository {
	return &trainingRepository{trainings: newCollection[model.TrainingRequest]()}
}

func (r *trainingRepository) Create(_ context.Context, training *model.TrainingRequest) error {
	if training.ID == "" {
		training.ID = uuid.NewString()
	}
	now := time.Now()
	training.CreatedAt = now
	training.UpdatedAt = now
	r.trainings.insert(training.ID, *training)
	return nil
}

func (r *trainingRepository) GetByID(_ context.Context, id string) (*model.TrainingRequest, error) {
	training, err := r.trainings.get(id)
	if err != nil {
		return nil, err
	}
	return &training, nil
}

func (r *trainingRepository) List(_ context.Context) ([]model.TrainingRequest, error) {
	return r.trainings.list(), nil
}

func (r *trainingRepository) ListBySeller(_ context.Context, sellerID string) ([]model.TrainingRequest, error) {
	return r.trainings.filter(func(t model.TrainingRequest) bool { return t.Seller.ID == sellerID }), nil
}

func (r *trainingRepository) ListByStatus(_ context.Context, status string) ([]model.TrainingRequest, error) {
	return r.trainings.filter(func(t model.TrainingRequest) bool { return t.Status == status }), nil
}

func (r *trainingRepository) Update(_ context.Context, training *model.TrainingRequest) error {
	training.UpdatedAt = time.Now()
	return r.trainings.update(training.ID, *training)
}
