package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"
)

// FetchError wraps a failed winners fetch so callers can distinguish a
// remote failure from an empty gallery.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch winners from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ErrFetchInFlight is returned when a refresh is requested while another is
// still running. At most one fetch is in flight at a time.
var ErrFetchInFlight = errors.New("winners fetch already in progress")

// WinnerService lists the winners gallery and refreshes it from the remote
// feed. A fetch either succeeds and replaces the collection or fails with a
// FetchError leaving the collection as it was; there are no retries.
type WinnerService interface {
	List(ctx context.Context) ([]model.Winner, error)
	Refresh(ctx context.Context) error
}

type winnerService struct {
	winners repository.WinnerRepository
	client  *http.Client
	url     string
	mu      sync.Mutex
}

func NewWinnerService(winners repository.WinnerRepository, url string) WinnerService {
	return &winnerService{
		winners: winners,
		client:  &http.Client{Timeout: 10 * time.Second},
		url:     url,
	}
}

func (s *winnerService) List(ctx context.Context) ([]model.Winner, error) {
	return s.winners.List(ctx)
}

func (s *winnerService) Refresh(ctx context.Context) error {
	if !s.mu.TryLock() {
		return ErrFetchInFlight
	}
	defer s.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return &FetchError{URL: s.url, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &FetchError{URL: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{URL: s.url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var winners []model.Winner
	if err := json.NewDecoder(resp.Body).Decode(&winners); err != nil {
		return &FetchError{URL: s.url, Err: err}
	}

	return s.winners.ReplaceAll(ctx, winners)
}
