package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	testhelpers "github.com/finpoint/finpoint/internal/test"
)

func TestPointsUseCaseEarnSpendValidation(t *testing.T) {
	uc := NewPointsUseCase(&testhelpers.PointsRepositoryStub{}, testhelpers.AdTaskVerifierStub{})

	if err := uc.Earn(context.Background(), 1, 0, model.PointSourceCheckIn); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if err := uc.Spend(context.Background(), 1, -10, model.PointSourceSubscription); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected invalid amount, got %v", err)
	}
}

func TestPointsUseCaseSpendInsufficient(t *testing.T) {
	repo := &testhelpers.PointsRepositoryStub{BalanceVal: 30}
	uc := NewPointsUseCase(repo, testhelpers.AdTaskVerifierStub{})

	if err := uc.Spend(context.Background(), 1, 50, model.PointSourceSubscription); err != domainErrors.ErrInsufficientPoints {
		t.Fatalf("expected insufficient points, got %v", err)
	}
	if repo.BalanceVal != 30 {
		t.Fatalf("balance must not change on a failed spend, got %d", repo.BalanceVal)
	}
}

func TestPointsUseCaseCompleteAdTask(t *testing.T) {
	repo := &testhelpers.PointsRepositoryStub{}
	uc := NewPointsUseCase(repo, testhelpers.AdTaskVerifierStub{Task: &model.AdTask{Token: "t1", Status: model.AdTaskCompleted, Reward: 25}})

	points, err := uc.CompleteAdTask(context.Background(), 1, "t1")
	if err != nil {
		t.Fatalf("complete ad task returned error: %v", err)
	}
	if points != 25 {
		t.Fatalf("expected reward 25, got %d", points)
	}
	if repo.BalanceVal != 25 {
		t.Fatalf("expected balance credited, got %d", repo.BalanceVal)
	}
}

func TestPointsUseCaseCompleteAdTaskReplay(t *testing.T) {
	repo := &testhelpers.PointsRepositoryStub{}
	uc := NewPointsUseCase(repo, testhelpers.AdTaskVerifierStub{Task: &model.AdTask{Token: "t1", Status: model.AdTaskCompleted, Reward: 25}})

	if _, err := uc.CompleteAdTask(context.Background(), 1, "t1"); err != nil {
		t.Fatalf("first claim returned error: %v", err)
	}
	if _, err := uc.CompleteAdTask(context.Background(), 1, "t1"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected replay to fail with ErrAlreadyExists, got %v", err)
	}
	if repo.BalanceVal != 25 {
		t.Fatalf("expected a single credit, balance %d", repo.BalanceVal)
	}
}

func TestPointsUseCaseCompleteAdTaskStates(t *testing.T) {
	tests := []struct {
		name string
		task model.AdTask
		want error
	}{
		{"pending", model.AdTask{Status: model.AdTaskPending}, domainErrors.ErrAdTaskNotCompleted},
		{"invalid", model.AdTask{Status: model.AdTaskInvalid}, domainErrors.ErrAdTaskInvalid},
		{"zero reward", model.AdTask{Status: model.AdTaskCompleted, Reward: 0}, domainErrors.ErrAdTaskInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewPointsUseCase(&testhelpers.PointsRepositoryStub{}, testhelpers.AdTaskVerifierStub{Task: &tt.task})
			if _, err := uc.CompleteAdTask(context.Background(), 1, "token"); err != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPointsUseCaseCompleteAdTaskBlankToken(t *testing.T) {
	uc := NewPointsUseCase(&testhelpers.PointsRepositoryStub{}, testhelpers.AdTaskVerifierStub{VerifyFn: func(context.Context, string) (*model.AdTask, error) {
		t.Fatal("verifier should not be called for blank tokens")
		return nil, nil
	}})
	if _, err := uc.CompleteAdTask(context.Background(), 1, "   "); err != domainErrors.ErrAdTaskInvalid {
		t.Fatalf("expected invalid task, got %v", err)
	}
}

func TestPointsUseCasePurchaseSubscription(t *testing.T) {
	repo := &testhelpers.PointsRepositoryStub{BalanceVal: 100}
	uc := NewPointsUseCase(repo, testhelpers.AdTaskVerifierStub{})

	if err := uc.PurchaseSubscription(context.Background(), 1, "premium", 60); err != nil {
		t.Fatalf("purchase returned error: %v", err)
	}
	if repo.BalanceVal != 40 {
		t.Fatalf("expected balance 40, got %d", repo.BalanceVal)
	}
	if len(repo.Spent) != 1 || repo.Spent[0].Source != model.PointSourceSubscription {
		t.Fatalf("unexpected spend record: %+v", repo.Spent)
	}

	if err := uc.PurchaseSubscription(context.Background(), 1, "", 10); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected invalid amount for blank plan, got %v", err)
	}
	if err := uc.PurchaseSubscription(context.Background(), 1, "premium", 100); err != domainErrors.ErrInsufficientPoints {
		t.Fatalf("expected insufficient points, got %v", err)
	}
}
