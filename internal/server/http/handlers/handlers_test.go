package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	"github.com/finpoint/finpoint/internal/server/http/dto"
	"github.com/finpoint/finpoint/internal/server/http/middleware"
	testhelpers "github.com/finpoint/finpoint/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	// Routes with an ID segment are registered as "/:id" in the real router;
	// mirror that here so handlers can read c.Param("id").
	route := path
	if segs := strings.Split(path, "/"); len(segs) == 4 {
		segs[2] = ":id"
		route = strings.Join(segs, "/")
	}
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
	}
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	login := testhelpers.RandomASCIIString(7, 14)
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.AuthRequest{Login: login, Password: password})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotLogin, gotPassword, referralCode string) (string, error) {
		if gotLogin != login || gotPassword != password {
			t.Fatalf("unexpected credentials %q/%q", gotLogin, gotPassword)
		}
		return "token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}
}

func TestAuthHandlerRegisterPassesReferralCode(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "user", Password: "pass", ReferralCode: "friend-code"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, login, password, referralCode string) (string, error) {
		if referralCode != "friend-code" {
			t.Fatalf("unexpected referral code %q", referralCode)
		}
		return "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{
			name:   "malformed body",
			facade: testhelpers.AuthFacadeStub{},
			body:   []byte("{"),
			status: http.StatusBadRequest,
		},
		{
			name: "invalid credentials",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
				return "", domainErrors.ErrInvalidCredentials
			}},
			body:   mustJSON(t, dto.AuthRequest{Login: "u", Password: "p"}),
			status: http.StatusBadRequest,
		},
		{
			name: "duplicate login",
			facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
				return "", domainErrors.ErrAlreadyExists
			}},
			body:   mustJSON(t, dto.AuthRequest{Login: "u", Password: "p"}),
			status: http.StatusConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLoginUnauthorized(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
		return "", domainErrors.ErrInvalidCredentials
	}}
	body := mustJSON(t, dto.AuthRequest{Login: "u", Password: "bad"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(facade).Login, nil, body, jsonHeaders())
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestLedgerHandlerRecord(t *testing.T) {
	body := mustJSON(t, dto.TransactionRequest{Kind: "income", Category: "salary", Amount: 5000, Date: "2025-06-10"})
	handler := NewLedgerHandler(testhelpers.LedgerFacadeStub{RecordFn: func(ctx context.Context, userID int64, kind model.TransactionKind, category string, amount int64, date time.Time, description string) (*model.Transaction, error) {
		if userID != 7 || kind != model.TransactionIncome || amount != 5000 {
			t.Fatalf("unexpected arguments: %d %s %d", userID, kind, amount)
		}
		return &model.Transaction{ID: 1, UserID: userID, Kind: kind, Category: category, Amount: amount, Date: date}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/transactions", handler.Record, asUser(7), body, jsonHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var got dto.TransactionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}
	if got.Amount != 5000 || got.Date != "2025-06-10" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestLedgerHandlerRecordFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid amount", domainErrors.ErrInvalidAmount, http.StatusUnprocessableEntity},
		{"insufficient balance", domainErrors.ErrInsufficientBalance, http.StatusPaymentRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewLedgerHandler(testhelpers.LedgerFacadeStub{RecordFn: func(context.Context, int64, model.TransactionKind, string, int64, time.Time, string) (*model.Transaction, error) {
				return nil, tt.err
			}})
			body := mustJSON(t, dto.TransactionRequest{Kind: "expense", Amount: 100})
			resp := performRequest(t, http.MethodPost, "/transactions", handler.Record, asUser(1), body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestLedgerHandlerRecordBadDate(t *testing.T) {
	body := mustJSON(t, dto.TransactionRequest{Kind: "income", Amount: 100, Date: "10/06/2025"})
	resp := performRequest(t, http.MethodPost, "/transactions", NewLedgerHandler(testhelpers.LedgerFacadeStub{}).Record, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestLedgerHandlerListEmpty(t *testing.T) {
	handler := NewLedgerHandler(testhelpers.LedgerFacadeStub{TransactionsFn: func(context.Context, int64) ([]model.Transaction, error) {
		return nil, nil
	}})
	resp := performRequest(t, http.MethodGet, "/transactions", handler.List, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestLedgerHandlerBalance(t *testing.T) {
	handler := NewLedgerHandler(testhelpers.LedgerFacadeStub{BalancesFn: func(context.Context, int64) (*model.BalanceSummary, error) {
		return &model.BalanceSummary{Wallet: 1500, Points: 75}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/balance", handler.Balance, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var got dto.BalanceResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}
	if got.Balance != 1500 || got.Points != 75 {
		t.Fatalf("unexpected balances: %+v", got)
	}
}

func TestDebtHandlerCreate(t *testing.T) {
	body := mustJSON(t, dto.DebtNoteRequest{Type: "lent", Counterparty: "alex", Amount: 500, Date: "2025-06-10", RepaymentDate: "2025-07-01"})
	handler := NewDebtHandler(testhelpers.DebtFacadeStub{CreateFn: func(ctx context.Context, userID int64, debtType model.DebtType, counterparty string, amount int64, date time.Time, repaymentDate *time.Time, description string) (*model.DebtNote, error) {
		if debtType != model.DebtLent || counterparty != "alex" || repaymentDate == nil {
			t.Fatalf("unexpected arguments: %s %s %v", debtType, counterparty, repaymentDate)
		}
		return &model.DebtNote{ID: 1, Type: debtType, Counterparty: counterparty, Amount: amount, Status: model.DebtUnpaid, Date: date, RepaymentDate: repaymentDate}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/debts", handler.Create, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var got dto.DebtNoteResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}
	if got.Status != "unpaid" || got.RepaymentDate != "2025-07-01" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestDebtHandlerCreateInsufficientFunds(t *testing.T) {
	handler := NewDebtHandler(testhelpers.DebtFacadeStub{CreateFn: func(context.Context, int64, model.DebtType, string, int64, time.Time, *time.Time, string) (*model.DebtNote, error) {
		return nil, domainErrors.ErrInsufficientBalance
	}})
	body := mustJSON(t, dto.DebtNoteRequest{Type: "lent", Counterparty: "alex", Amount: 1000000})
	resp := performRequest(t, http.MethodPost, "/debts", handler.Create, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusPaymentRequired {
		t.Fatalf("expected status 402, got %d", resp.Code)
	}
}

func TestDebtHandlerPayFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"note missing", domainErrors.ErrNotFound, http.StatusNotFound},
		{"overpayment", domainErrors.ErrInvalidPaymentAmount, http.StatusUnprocessableEntity},
		{"wallet short", domainErrors.ErrInsufficientBalance, http.StatusPaymentRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewDebtHandler(testhelpers.DebtFacadeStub{PayFn: func(context.Context, int64, int64, int64, time.Time) (*model.DebtNote, error) {
				return nil, tt.err
			}})
			body := mustJSON(t, dto.DebtPaymentRequest{Amount: 100})
			resp := performRequest(t, http.MethodPost, "/debts/5/payments", handler.Pay, asUser(1), body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestDebtHandlerPayBadID(t *testing.T) {
	body := mustJSON(t, dto.DebtPaymentRequest{Amount: 100})
	resp := performRequest(t, http.MethodPost, "/debts/abc/payments", NewDebtHandler(testhelpers.DebtFacadeStub{}).Pay, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestDebtHandlerSettle(t *testing.T) {
	body := mustJSON(t, dto.SettlementRequest{Counterparty: "corner shop", Amount: 300})
	handler := NewDebtHandler(testhelpers.DebtFacadeStub{SettleFn: func(ctx context.Context, userID int64, counterparty string, amount int64, date time.Time) ([]model.DebtNote, error) {
		return []model.DebtNote{
			{ID: 1, Counterparty: counterparty, Amount: 100, PaidAmount: 100, Status: model.DebtPaid},
			{ID: 2, Counterparty: counterparty, Amount: 300, PaidAmount: 200, Status: model.DebtPartiallyPaid},
		}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/debts/settle", handler.Settle, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var got []dto.DebtNoteResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}
	if len(got) != 2 || got[0].Status != "paid" || got[1].Status != "partially_paid" {
		t.Fatalf("unexpected settlement response: %+v", got)
	}
}

func TestDebtHandlerSettleOverpayment(t *testing.T) {
	handler := NewDebtHandler(testhelpers.DebtFacadeStub{SettleFn: func(context.Context, int64, string, int64, time.Time) ([]model.DebtNote, error) {
		return nil, domainErrors.ErrInvalidPaymentAmount
	}})
	body := mustJSON(t, dto.SettlementRequest{Counterparty: "shop", Amount: 999})
	resp := performRequest(t, http.MethodPost, "/debts/settle", handler.Settle, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
}

func TestPointsHandlerHistoryEmpty(t *testing.T) {
	handler := NewPointsHandler(testhelpers.PointsFacadeStub{HistoryFn: func(context.Context, int64) ([]model.PointEntry, error) {
		return nil, nil
	}})
	resp := performRequest(t, http.MethodGet, "/points/history", handler.History, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestPointsHandlerCompleteAdTask(t *testing.T) {
	body := mustJSON(t, dto.AdTaskRequest{Token: "t1"})
	resp := performRequest(t, http.MethodPost, "/points/ad-task", NewPointsHandler(testhelpers.PointsFacadeStub{}).CompleteAdTask, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var got dto.AdTaskResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}
	if got.Points != 10 {
		t.Fatalf("expected reward 10, got %d", got.Points)
	}
}

func TestPointsHandlerCompleteAdTaskFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid task", domainErrors.ErrAdTaskInvalid, http.StatusUnprocessableEntity},
		{"not completed", domainErrors.ErrAdTaskNotCompleted, http.StatusConflict},
		{"replayed token", domainErrors.ErrAlreadyExists, http.StatusConflict},
		{"unknown token", domainErrors.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPointsHandler(testhelpers.PointsFacadeStub{AdTaskFn: func(context.Context, int64, string) (int64, error) {
				return 0, tt.err
			}})
			body := mustJSON(t, dto.AdTaskRequest{Token: "t1"})
			resp := performRequest(t, http.MethodPost, "/points/ad-task", handler.CompleteAdTask, asUser(1), body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestPointsHandlerPurchaseSubscriptionInsufficient(t *testing.T) {
	handler := NewPointsHandler(testhelpers.PointsFacadeStub{SubscriptionFn: func(context.Context, int64, string, int64) error {
		return domainErrors.ErrInsufficientPoints
	}})
	body := mustJSON(t, dto.SubscriptionRequest{Plan: "premium", Points: 500})
	resp := performRequest(t, http.MethodPost, "/points/subscription", handler.PurchaseSubscription, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusPaymentRequired {
		t.Fatalf("expected status 402, got %d", resp.Code)
	}
}

func TestWithdrawalHandlerRequest(t *testing.T) {
	body := mustJSON(t, dto.WithdrawRequest{Points: 149, Method: "bank", Account: "acc-1"})
	handler := NewWithdrawalHandler(testhelpers.WithdrawalFacadeStub{RequestFn: func(ctx context.Context, userID int64, points int64, method, account string) (*model.WithdrawalRequest, error) {
		return &model.WithdrawalRequest{ID: 1, UserID: userID, Reference: "ref-1", Status: model.WithdrawalPending, Points: 100, CashAmount: 500, Method: method, Account: account}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/withdrawals", handler.Request, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var got dto.WithdrawalResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}
	if got.Points != 100 || got.CashAmount != 500 || got.Status != "pending" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestWithdrawalHandlerRequestFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"below threshold", domainErrors.ErrBelowMinimumThreshold, http.StatusUnprocessableEntity},
		{"insufficient points", domainErrors.ErrInsufficientPoints, http.StatusPaymentRequired},
		{"invalid request", domainErrors.ErrInvalidAmount, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewWithdrawalHandler(testhelpers.WithdrawalFacadeStub{RequestFn: func(context.Context, int64, int64, string, string) (*model.WithdrawalRequest, error) {
				return nil, tt.err
			}})
			body := mustJSON(t, dto.WithdrawRequest{Points: 50, Method: "bank", Account: "acc"})
			resp := performRequest(t, http.MethodPost, "/withdrawals", handler.Request, asUser(1), body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestWithdrawalHandlerApproveConflict(t *testing.T) {
	handler := NewWithdrawalHandler(testhelpers.WithdrawalFacadeStub{ApproveFn: func(context.Context, int64, int64) (*model.WithdrawalRequest, error) {
		return nil, domainErrors.ErrInvalidTransition
	}})
	resp := performRequest(t, http.MethodPost, "/withdrawals/3/approve", handler.Approve, asUser(1), nil, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestWithdrawalHandlerApproveScopedToCaller(t *testing.T) {
	handler := NewWithdrawalHandler(testhelpers.WithdrawalFacadeStub{ApproveFn: func(ctx context.Context, userID, requestID int64) (*model.WithdrawalRequest, error) {
		if userID != 1 {
			t.Fatalf("expected caller id 1, got %d", userID)
		}
		return nil, domainErrors.ErrNotFound
	}})
	resp := performRequest(t, http.MethodPost, "/withdrawals/3/approve", handler.Approve, asUser(1), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestWithdrawalHandlerReject(t *testing.T) {
	body := mustJSON(t, dto.RejectRequest{Reason: "account mismatch"})
	handler := NewWithdrawalHandler(testhelpers.WithdrawalFacadeStub{RejectFn: func(ctx context.Context, userID, requestID int64, reason string) (*model.WithdrawalRequest, error) {
		if userID != 1 {
			t.Fatalf("expected caller id 1, got %d", userID)
		}
		if reason != "account mismatch" {
			t.Fatalf("unexpected reason %q", reason)
		}
		return &model.WithdrawalRequest{ID: requestID, Status: model.WithdrawalRejected, RejectionReason: &reason, Refunded: true}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/withdrawals/3/reject", handler.Reject, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var got dto.WithdrawalResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}
	if got.Status != "rejected" || !got.Refunded {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestCheckInHandlerStatus(t *testing.T) {
	handler := NewCheckInHandler(testhelpers.CheckInFacadeStub{StatusFn: func(context.Context, int64, time.Time) (*model.StreakSummary, error) {
		return &model.StreakSummary{Streak: 4, CheckedInToday: true}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/checkin", handler.Status, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var got dto.StreakResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}
	if got.Streak != 4 || !got.CheckedInToday {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestCheckInHandlerDoubleCheckIn(t *testing.T) {
	handler := NewCheckInHandler(testhelpers.CheckInFacadeStub{CheckInFn: func(context.Context, int64, time.Time) (*model.CheckIn, error) {
		return nil, domainErrors.ErrAlreadyCheckedIn
	}})
	resp := performRequest(t, http.MethodPost, "/checkin", handler.CheckIn, asUser(1), nil, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestNotificationHandlerList(t *testing.T) {
	link := "https://example.com/debts/1"
	handler := NewNotificationHandler(testhelpers.NotificationFacadeStub{NotificationsFn: func(context.Context, int64) ([]model.Notification, error) {
		return []model.Notification{{ID: 1, Title: "Repayment due: alex", Link: &link}}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/notifications", handler.List, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var got []dto.NotificationResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}
	if len(got) != 1 || got[0].Link == nil || *got[0].Link != link {
		t.Fatalf("unexpected notifications: %+v", got)
	}
}

func TestNotificationHandlerMarkReadNotFound(t *testing.T) {
	handler := NewNotificationHandler(testhelpers.NotificationFacadeStub{MarkReadFn: func(context.Context, int64, int64) error {
		return domainErrors.ErrNotFound
	}})
	resp := performRequest(t, http.MethodPost, "/notifications/9/read", handler.MarkRead, asUser(1), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("cannot marshal body: %v", err)
	}
	return body
}
