package service

import (
	"context"
	"errors"
	"testing"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"
)

type rewardFixture struct {
	svc     RewardService
	users   repository.UserRepository
	rewards repository.RewardRepository
	seller  *model.User
	reward  *model.Reward
}

func newRewardFixture(t *testing.T, points, stock int) *rewardFixture {
	t.Helper()
	ctx := context.Background()

	users := repository.NewUserRepository()
	rewards := repository.NewRewardRepository()
	requests := repository.NewRewardRequestRepository()
	audit := NewAuditService(repository.NewAuditRepository())

	seller := &model.User{Email: "carlos@test", Role: model.RoleSeller, Name: "Carlos", Store: "Norte", Points: points}
	if err := users.Create(ctx, seller); err != nil {
		t.Fatalf("create seller: %v", err)
	}
	reward := &model.Reward{Name: "Tablet", Points: 600, Stock: stock}
	if err := rewards.Create(ctx, reward); err != nil {
		t.Fatalf("create reward: %v", err)
	}

	return &rewardFixture{
		svc:     NewRewardService(rewards, requests, users, audit, NopNotifier{}),
		users:   users,
		rewards: rewards,
		seller:  seller,
		reward:  reward,
	}
}

func TestRedeem(t *testing.T) {
	f := newRewardFixture(t, 1000, 2)
	ctx := context.Background()

	request, err := f.svc.Redeem(ctx, f.seller.ID, f.reward.ID)
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if request.Status != model.StatusPending || request.Points != 600 || request.Stock != 1 {
		t.Errorf("request = %+v", request)
	}
	if request.UserName != "Carlos" || request.UserStore != "Norte" {
		t.Errorf("user snapshot = %q / %q", request.UserName, request.UserStore)
	}

	// Nothing moves until the request is approved.
	user, _ := f.users.GetByID(ctx, f.seller.ID)
	if user.Points != 1000 {
		t.Errorf("points = %d, want untouched 1000", user.Points)
	}
	reward, _ := f.rewards.GetByID(ctx, f.reward.ID)
	if reward.Stock != 2 {
		t.Errorf("stock = %d, want untouched 2", reward.Stock)
	}
}

func TestRedeemPreconditions(t *testing.T) {
	ctx := context.Background()

	poor := newRewardFixture(t, 100, 2)
	if _, err := poor.svc.Redeem(ctx, poor.seller.ID, poor.reward.ID); !errors.Is(err, model.ErrInsufficientPoints) {
		t.Errorf("insufficient points: err = %v, want ErrInsufficientPoints", err)
	}
	if requests, _ := poor.svc.ListRequests(ctx, ""); len(requests) != 0 {
		t.Errorf("refused redemption still created %d requests", len(requests))
	}

	empty := newRewardFixture(t, 1000, 0)
	if _, err := empty.svc.Redeem(ctx, empty.seller.ID, empty.reward.ID); !errors.Is(err, model.ErrRewardOutOfStock) {
		t.Errorf("empty stock: err = %v, want ErrRewardOutOfStock", err)
	}
}

func TestReviewApproveSettles(t *testing.T) {
	f := newRewardFixture(t, 1000, 2)
	ctx := context.Background()

	request, err := f.svc.Redeem(ctx, f.seller.ID, f.reward.ID)
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}

	reviewed, err := f.svc.Review(ctx, request.ID, "admin-1", ReviewDecisionRequest{Decision: model.StatusApproved})
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if reviewed.Status != model.StatusApproved {
		t.Errorf("status = %q, want approved", reviewed.Status)
	}

	user, _ := f.users.GetByID(ctx, f.seller.ID)
	if user.Points != 400 {
		t.Errorf("points = %d, want 400", user.Points)
	}
	reward, _ := f.rewards.GetByID(ctx, f.reward.ID)
	if reward.Stock != 1 {
		t.Errorf("stock = %d, want 1", reward.Stock)
	}

	// A decided request cannot be reviewed again, so it cannot settle twice.
	if _, err := f.svc.Review(ctx, request.ID, "admin-1", ReviewDecisionRequest{Decision: model.StatusApproved}); !errors.Is(err, model.ErrAlreadyDecided) {
		t.Errorf("second review: err = %v, want ErrAlreadyDecided", err)
	}
	user, _ = f.users.GetByID(ctx, f.seller.ID)
	if user.Points != 400 {
		t.Errorf("points after second review = %d, want still 400", user.Points)
	}
}

func TestReviewRejectMovesNothing(t *testing.T) {
	f := newRewardFixture(t, 1000, 2)
	ctx := context.Background()

	request, err := f.svc.Redeem(ctx, f.seller.ID, f.reward.ID)
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}

	reviewed, err := f.svc.Review(ctx, request.ID, "admin-1", ReviewDecisionRequest{Decision: model.StatusRejected, Comments: "sin stock físico"})
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if reviewed.Status != model.StatusRejected || reviewed.Comments != "sin stock físico" {
		t.Errorf("reviewed = %+v", reviewed)
	}

	user, _ := f.users.GetByID(ctx, f.seller.ID)
	if user.Points != 1000 {
		t.Errorf("points = %d, want untouched 1000", user.Points)
	}
	reward, _ := f.rewards.GetByID(ctx, f.reward.ID)
	if reward.Stock != 2 {
		t.Errorf("stock = %d, want untouched 2", reward.Stock)
	}
}

func TestReviewApproveRechecksBalance(t *testing.T) {
	f := newRewardFixture(t, 1000, 2)
	ctx := context.Background()

	// Two pending requests against the same balance. Only one can settle.
	first, err := f.svc.Redeem(ctx, f.seller.ID, f.reward.ID)
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	second, err := f.svc.Redeem(ctx, f.seller.ID, f.reward.ID)
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}

	if _, err := f.svc.Review(ctx, first.ID, "admin-1", ReviewDecisionRequest{Decision: model.StatusApproved}); err != nil {
		t.Fatalf("Review first: %v", err)
	}

	if _, err := f.svc.Review(ctx, second.ID, "admin-1", ReviewDecisionRequest{Decision: model.StatusApproved}); !errors.Is(err, model.ErrInsufficientPoints) {
		t.Fatalf("Review second: err = %v, want ErrInsufficientPoints", err)
	}

	// The spent balance stays where the first approval left it.
	user, _ := f.users.GetByID(ctx, f.seller.ID)
	if user.Points != 400 {
		t.Errorf("points = %d, want 400", user.Points)
	}
	// The refused request is still pending and can be rejected later.
	requests, _ := f.svc.ListRequests(ctx, f.seller.ID)
	for _, q := range requests {
		if q.ID == second.ID && q.Status != model.StatusPending {
			t.Errorf("refused request status = %q, want pending", q.Status)
		}
	}
}

func TestUserSnapshotNotResynced(t *testing.T) {
	f := newRewardFixture(t, 1000, 2)
	ctx := context.Background()

	request, err := f.svc.Redeem(ctx, f.seller.ID, f.reward.ID)
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}

	f.seller.Name = "Carlos Renombrado"
	if err := f.users.Update(ctx, f.seller); err != nil {
		t.Fatalf("rename user: %v", err)
	}

	requests, _ := f.svc.ListRequests(ctx, f.seller.ID)
	for _, q := range requests {
		if q.ID == request.ID && q.UserName != "Carlos" {
			t.Errorf("snapshot name = %q, want the name at request time", q.UserName)
		}
	}
}
