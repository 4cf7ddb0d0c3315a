package service

import (
	"context"
	"errors"
	"testing"

	"incentivehub/internal/model"
	"incentivehub/internal/repository"
)

func newTrainingFixture(t *testing.T) (TrainingService, repository.TrainingRepository, *model.User) {
	t.Helper()
	users := repository.NewUserRepository()
	trainings := repository.NewTrainingRepository()
	audit := NewAuditService(repository.NewAuditRepository())

	seller := &model.User{Email: "carlos@test", Role: model.RoleSeller, Name: "Carlos", Store: "Norte"}
	if err := users.Create(context.Background(), seller); err != nil {
		t.Fatalf("create seller: %v", err)
	}

	return NewTrainingService(trainings, users, audit, NopNotifier{}), trainings, seller
}

func TestTrainingCreate(t *testing.T) {
	svc, _, seller := newTrainingFixture(t)
	ctx := context.Background()

	training, err := svc.Create(ctx, seller.ID, CreateTrainingRequest{
		Date: "2024-03-11", Time: "10:00", Topic: "Nueva gama TV",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if training.Status != model.StatusPending {
		t.Errorf("status = %q, want pending", training.Status)
	}
	if training.Seller.Name != "Carlos" || training.Seller.Company != "Norte" {
		t.Errorf("seller snapshot = %+v", training.Seller)
	}

	if _, err := svc.Create(ctx, seller.ID, CreateTrainingRequest{
		Date: "11/03/2024", Time: "10:00", Topic: "Mal formada",
	}); err == nil {
		t.Error("expected error for unparseable slot")
	}
}

func TestTrainingApproveConflict(t *testing.T) {
	svc, _, seller := newTrainingFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, seller.ID, CreateTrainingRequest{Date: "2024-03-11", Time: "09:00", Topic: "A"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	overlapping, err := svc.Create(ctx, seller.ID, CreateTrainingRequest{Date: "2024-03-11", Time: "10:00", Topic: "B"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	touching, err := svc.Create(ctx, seller.ID, CreateTrainingRequest{Date: "2024-03-11", Time: "10:30", Topic: "C"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	approved, err := svc.Approve(ctx, first.ID, "admin-1", ApproveTrainingRequest{Trainer: "Laura"})
	if err != nil {
		t.Fatalf("Approve first: %v", err)
	}
	if approved.Status != model.StatusApproved || approved.Trainer != "Laura" {
		t.Errorf("approved = %+v", approved)
	}
	if approved.Duration != 90 {
		t.Errorf("duration = %d, want default 90", approved.Duration)
	}

	if _, err := svc.Approve(ctx, overlapping.ID, "admin-1", ApproveTrainingRequest{Trainer: "Laura"}); !errors.Is(err, model.ErrScheduleConflict) {
		t.Fatalf("Approve overlapping: err = %v, want ErrScheduleConflict", err)
	}

	// The refused request is left pending and unmodified.
	kept, err := svc.List(ctx, seller.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, tr := range kept {
		if tr.ID == overlapping.ID {
			if tr.Status != model.StatusPending || tr.Trainer != "" {
				t.Errorf("refused request was modified: %+v", tr)
			}
		}
	}

	// A slot starting exactly when the approved one ends is free.
	if _, err := svc.Approve(ctx, touching.ID, "admin-1", ApproveTrainingRequest{Trainer: "Laura"}); err != nil {
		t.Fatalf("Approve touching slot: %v", err)
	}
}

func TestTrainingDecisionIsTerminal(t *testing.T) {
	svc, _, seller := newTrainingFixture(t)
	ctx := context.Background()

	training, err := svc.Create(ctx, seller.ID, CreateTrainingRequest{Date: "2024-03-11", Time: "09:00", Topic: "A"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rejected, err := svc.Reject(ctx, training.ID, "admin-1", "sin cupo")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if rejected.Status != model.StatusRejected || rejected.Comments != "sin cupo" {
		t.Errorf("rejected = %+v", rejected)
	}

	if _, err := svc.Approve(ctx, training.ID, "admin-1", ApproveTrainingRequest{Trainer: "Laura"}); !errors.Is(err, model.ErrAlreadyDecided) {
		t.Errorf("Approve after reject: err = %v, want ErrAlreadyDecided", err)
	}
	if _, err := svc.Reject(ctx, training.ID, "admin-1", "otra vez"); !errors.Is(err, model.ErrAlreadyDecided) {
		t.Errorf("second Reject: err = %v, want ErrAlreadyDecided", err)
	}
}

func TestTrainingCalendarSkipsMalformed(t *testing.T) {
	svc, trainings, seller := newTrainingFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, seller.ID, CreateTrainingRequest{Date: "2024-03-11", Time: "09:00", Topic: "A"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// A malformed record can exist in the store; the calendar must skip it.
	if err := trainings.Create(ctx, &model.TrainingRequest{
		Date: "garbage", Time: "09:00", Topic: "B", Status: model.StatusPending,
	}); err != nil {
		t.Fatalf("insert malformed: %v", err)
	}

	events, err := svc.Calendar(ctx)
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Title != "A" {
		t.Errorf("event = %+v", events[0])
	}
}
