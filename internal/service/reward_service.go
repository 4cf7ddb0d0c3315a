package service

import (
	"context"
	"fmt"
	"time"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"
	"incentivehub/internal/websocket"
)

type CreateRewardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Points      int    `json:"points" binding:"required,min=1"`
	Stock       int    `json:"stock" binding:"min=0"`
	Image       string `json:"image"`
}

type UpdateRewardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      *int   `json:"points"`
	Stock       *int   `json:"stock"`
	Image       string `json:"image"`
}

type ReviewDecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Comments string `json:"comments"`
}

// RewardService manages the rewards catalog and the redemption workflow.
type RewardService interface {
	Create(ctx context.Context, req CreateRewardRequest) (*model.Reward, error)
	List(ctx context.Context) ([]model.Reward, error)
	Update(ctx context.Context, id string, req UpdateRewardRequest) (*model.Reward, error)
	Delete(ctx context.Context, id string) error

	Redeem(ctx context.Context, userID, rewardID string) (*model.RewardRequest, error)
	ListRequests(ctx context.Context, userID string) ([]model.RewardRequest, error)
	Review(ctx context.Context, id, adminID string, req ReviewDecisionRequest) (*model.RewardRequest, error)
}

type rewardService struct {
	rewards  repository.RewardRepository
	requests repository.RewardRequestRepository
	users    repository.UserRepository
	audit    AuditService
	notifier Notifier
}

func NewRewardService(
	rewards repository.RewardRepository,
	requests repository.RewardRequestRepository,
	users repository.UserRepository,
	audit AuditService,
	notifier Notifier,
) RewardService {
	return &rewardService{rewards: rewards, requests: requests, users: users, audit: audit, notifier: notifier}
}

func (s *rewardService) Create(ctx context.Context, req CreateRewardRequest) (*model.Reward, error) {
	reward := &model.Reward{
		Name:        req.Name,
		Description: req.Description,
		Points:      req.Points,
		Stock:       req.Stock,
		Image:       req.Image,
	}
	if err := s.rewards.Create(ctx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

func (s *rewardService) List(ctx context.Context) ([]model.Reward, error) {
	return s.rewards.List(ctx)
}

func (s *rewardService) Update(ctx context.Context, id string, req UpdateRewardRequest) (*model.Reward, error) {
	reward, err := s.rewards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		reward.Name = req.Name
	}
	if req.Description != "" {
		reward.Description = req.Description
	}
	if req.Points != nil {
		reward.Points = *req.Points
	}
	if req.Stock != nil {
		reward.Stock = *req.Stock
	}
	if req.Image != "" {
		reward.Image = req.Image
	}

	if err := s.rewards.Update(ctx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

func (s *rewardService) Delete(ctx context.Context, id string) error {
	if _, err := s.rewards.GetByID(ctx, id); err != nil {
		return err
	}
	return s.rewards.Delete(ctx, id)
}

// Redeem creates a pending single-unit redemption. Stock and point
// sufficiency are hard preconditions; the point cost and user identity are
// captured at request time and never re-read.
func (s *rewardService) Redeem(ctx context.Context, userID, rewardID string) (*model.RewardRequest, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	reward, err := s.rewards.GetByID(ctx, rewardID)
	if err != nil {
		return nil, err
	}

	if reward.Stock <= 0 {
		return nil, model.ErrRewardOutOfStock
	}
	if user.Points < reward.Points {
		return nil, model.ErrInsufficientPoints
	}

	request := &model.RewardRequest{
		UserID:      user.ID,
		UserName:    user.Name,
		UserStore:   user.Store,
		RewardID:    reward.ID,
		RewardName:  reward.Name,
		Points:      reward.Points,
		Stock:       1,
		RequestDate: time.Now(),
		Status:      model.StatusPending,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	s.notifier.Notify(websocket.Event{Type: "created", Entity: "reward_request", EntityID: request.ID, Status: request.Status})
	return request, nil
}

func (s *rewardService) ListRequests(ctx context.Context, userID string) ([]model.RewardRequest, error) {
	if userID != "" {
		return s.requests.ListByUser(ctx, userID)
	}
	return s.requests.List(ctx)
}

// Review applies the single pending -> approved/rejected transition.
// Approval is the point where the balance actually moves: the user's points
// and the reward's stock are re-checked and decremented together, so a
// balance spent by a concurrent approval cannot go negative.
func (s *rewardService) Review(ctx context.Context, id, adminID string, req ReviewDecisionRequest) (*model.RewardRequest, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if model.Decided(request.Status) {
		return nil, model.ErrAlreadyDecided
	}

	if req.Decision == model.StatusApproved {
		if err := s.settle(ctx, request); err != nil {
			return nil, err
		}
	}

	request.Status = req.Decision
	request.Comments = req.Comments
	if err := s.requests.Update(ctx, request); err != nil {
		return nil, err
	}

	action := model.ActionApproveRewardRequest
	if req.Decision == model.StatusRejected {
		action = model.ActionRejectRewardRequest
	}
	s.audit.Record(ctx, adminID, action, request.ID, request.RewardName, map[string]any{
		"user": request.UserID, "points": request.Points, "comments": req.Comments,
	})
	s.notifier.Notify(websocket.Event{Type: "reviewed", Entity: "reward_request", EntityID: request.ID, Status: req.Decision})
	return request, nil
}

// settle debits the user and the reward stock for an approval.
func (s *rewardService) settle(ctx context.Context, request *model.RewardRequest) error {
	user, err := s.users.GetByID(ctx, request.UserID)
	if err != nil {
		return fmt.Errorf("requesting user: %w", err)
	}
	reward, err := s.rewards.GetByID(ctx, request.RewardID)
	if err != nil {
		return fmt.Errorf("requested reward: %w", err)
	}

	if user.Points < request.Points {
		return model.ErrInsufficientPoints
	}
	if reward.Stock <= 0 {
		return model.ErrRewardOutOfStock
	}

	user.Points -= request.Points
	reward.Stock--

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	if err := s.rewards.Update(ctx, reward); err != nil {
		return err
	}
	return nil
}
