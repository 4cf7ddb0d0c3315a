package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"
)

func TestWinnerRefresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"w1","name":"Ana","store":"Norte","reward_name":"Tablet","points":600},
			{"id":"w2","name":"Zoe","store":"Sur","reward_name":"Cena","points":250}
		]`))
	}))
	defer server.Close()

	winners := repository.NewWinnerRepository()
	svc := NewWinnerService(winners, server.URL)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d winners, want 2", len(got))
	}
	if got[0].Name != "Ana" || got[1].RewardName != "Cena" {
		t.Errorf("winners = %+v", got)
	}
}

func TestWinnerRefreshReplacesGallery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"w9","name":"Nuevo"}]`))
	}))
	defer server.Close()

	winners := repository.NewWinnerRepository()
	if err := winners.ReplaceAll(context.Background(), []model.Winner{{ID: "old", Name: "Viejo"}}); err != nil {
		t.Fatalf("seed gallery: %v", err)
	}
	svc := NewWinnerService(winners, server.URL)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	got, _ := svc.List(context.Background())
	if len(got) != 1 || got[0].ID != "w9" {
		t.Errorf("gallery = %+v, want only the fetched entry", got)
	}
}

func TestWinnerRefreshFailureKeepsGallery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	winners := repository.NewWinnerRepository()
	if err := winners.ReplaceAll(context.Background(), []model.Winner{{ID: "old", Name: "Viejo"}}); err != nil {
		t.Fatalf("seed gallery: %v", err)
	}
	svc := NewWinnerService(winners, server.URL)

	err := svc.Refresh(context.Background())
	if err == nil {
		t.Fatal("expected error from failing feed")
	}
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("err = %T, want *FetchError", err)
	}
	if fetchErr.URL != server.URL {
		t.Errorf("FetchError.URL = %q, want %q", fetchErr.URL, server.URL)
	}

	got, _ := svc.List(context.Background())
	if len(got) != 1 || got[0].ID != "old" {
		t.Errorf("gallery = %+v, want untouched previous entries", got)
	}
}

func TestWinnerRefreshBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	svc := NewWinnerService(repository.NewWinnerRepository(), server.URL)

	var fetchErr *FetchError
	if err := svc.Refresh(context.Background()); !errors.As(err, &fetchErr) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
}
