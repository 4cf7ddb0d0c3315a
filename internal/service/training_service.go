package service

import (
	"context"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"
	"incentivehub/internal/schedule"
	"incentivehub/internal/websocket"
)

type CreateTrainingRequest struct {
	Date        string `json:"date" binding:"required"` // 2006-01-02
	Time        string `json:"time" binding:"required"` // 15:04
	Topic       string `json:"topic" binding:"required"`
	Description string `json:"description"`
}

type ApproveTrainingRequest struct {
	Trainer    string `json:"trainer" binding:"required"`
	Duration   int    `json:"duration"` // minutes, defaults to the fixed slot
	MeetingURL string `json:"meeting_url"`
}

// TrainingService manages training session requests and their review.
type TrainingService interface {
	Create(ctx context.Context, sellerID string, req CreateTrainingRequest) (*model.TrainingRequest, error)
	List(ctx context.Context, sellerID string) ([]model.TrainingRequest, error)
	Approve(ctx context.Context, id, adminID string, req ApproveTrainingRequest) (*model.TrainingRequest, error)
	Reject(ctx context.Context, id, adminID, comments string) (*model.TrainingRequest, error)
	Calendar(ctx context.Context) ([]schedule.Event, error)
}

type trainingService struct {
	trainings repository.TrainingRepository
	users     repository.UserRepository
	audit     AuditService
	notifier  Notifier
}

func NewTrainingService(
	trainings repository.TrainingRepository,
	users repository.UserRepository,
	audit AuditService,
	notifier Notifier,
) TrainingService {
	return &trainingService{trainings: trainings, users: users, audit: audit, notifier: notifier}
}

func (s *trainingService) Create(ctx context.Context, sellerID string, req CreateTrainingRequest) (*model.TrainingRequest, error) {
	seller, err := s.users.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	// Reject slots that could never be placed on the calendar.
	if _, err := schedule.Combine(req.Date, req.Time); err != nil {
		return nil, err
	}

	training := &model.TrainingRequest{
		Date:        req.Date,
		Time:        req.Time,
		Seller:      seller.Ref(),
		Topic:       req.Topic,
		Description: req.Description,
		Status:      model.StatusPending,
	}
	if err := s.trainings.Create(ctx, training); err != nil {
		return nil, err
	}

	s.notifier.Notify(websocket.Event{Type: "created", Entity: "training", EntityID: training.ID, Status: training.Status})
	return training, nil
}

func (s *trainingService) List(ctx context.Context, sellerID string) ([]model.TrainingRequest, error) {
	if sellerID != "" {
		return s.trainings.ListBySeller(ctx, sellerID)
	}
	return s.trainings.List(ctx)
}

// Approve transitions a pending request to approved, refusing with
// ErrScheduleConflict when the slot overlaps another approved session. On
// refusal the request keeps its pending status untouched.
func (s *trainingService) Approve(ctx context.Context, id, adminID string, req ApproveTrainingRequest) (*model.TrainingRequest, error) {
	training, err := s.trainings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if model.Decided(training.Status) {
		return nil, model.ErrAlreadyDecided
	}

	approved, err := s.trainings.ListByStatus(ctx, model.StatusApproved)
	if err != nil {
		return nil, err
	}
	conflict, err := schedule.HasConflict(training.Date, training.Time, approved, training.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, model.ErrScheduleConflict
	}

	training.Status = model.StatusApproved
	training.Trainer = req.Trainer
	training.Duration = req.Duration
	if training.Duration <= 0 {
		training.Duration = int(model.TrainingDuration.Minutes())
	}
	training.MeetingURL = req.MeetingURL
	if err := s.trainings.Update(ctx, training); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, model.ActionApproveTraining, training.ID, training.Topic, map[string]any{
		"date": training.Date, "time": training.Time, "trainer": training.Trainer,
	})
	s.notifier.Notify(websocket.Event{Type: "reviewed", Entity: "training", EntityID: training.ID, Status: training.Status})
	return training, nil
}

func (s *trainingService) Reject(ctx context.Context, id, adminID, comments string) (*model.TrainingRequest, error) {
	training, err := s.trainings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if model.Decided(training.Status) {
		return nil, model.ErrAlreadyDecided
	}

	training.Status = model.StatusRejected
	training.Comments = comments
	if err := s.trainings.Update(ctx, training); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, adminID, model.ActionRejectTraining, training.ID, training.Topic, map[string]any{"comments": comments})
	s.notifier.Notify(websocket.Event{Type: "reviewed", Entity: "training", EntityID: training.ID, Status: training.Status})
	return training, nil
}

func (s *trainingService) Calendar(ctx context.Context) ([]schedule.Event, error) {
	trainings, err := s.trainings.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.ToEvents(trainings), nil
}
