package repository

import (
	"context"

	"incentivehub/internal/model"

	"github.com/google/uuid"
)

// WinnerRepository defines data access for the winners gallery. The
// collection is replaced wholesale on each successful remote fetch.
type WinnerRepository interface {
	List(ctx context.Context) ([]model.Winner, error)
	ReplaceAll(ctx context.Context, winners []model.Winner) error
}

type winnerRepository struct {
	winners *collection[model.Winner]
}

// NewWinnerRepository returns an empty in-memory winner store.
func NewWinnerRepository() WinnerRepository {
	return &winnerRepository{winners: newCollection[model.Winner]()}
}

func (r *winnerRepository) List(_ context.Context) ([]model.Winner, error) {
	return r.winners.list(), nil
}

func (r *winnerRepository) ReplaceAll(_ context.Context, winners []model.Winner) error {
	ids := make([]string, len(winners))
	for i := range winners {
		if winners[i].ID == "" {
			winners[i].ID = uuid.NewString()
		}
		ids[i] = winners[i].ID
	}
	r.winners.replaceAll(ids, winners)
	return nil
}
