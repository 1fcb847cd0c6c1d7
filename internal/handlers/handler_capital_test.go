package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/julofinance/lender-ledger/internal/apperrors"
	"github.com/julofinance/lender-ledger/internal/core/domain"
	portssvc "github.com/julofinance/lender-ledger/internal/core/ports/services"
	"github.com/julofinance/lender-ledger/internal/dto"
	"github.com/julofinance/lender-ledger/internal/handlers"
)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

func (m *MockPostingService) Deposit(ctx context.Context, partnerID string, amount int64, actorUserID string) (*domain.LedgerEvent, error) {
	args := m.Called(ctx, partnerID, amount, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEvent), args.Error(1)
}

func (m *MockPostingService) Withdraw(ctx context.Context, partnerID string, amount int64, actorUserID string) (*domain.LedgerEvent, error) {
	args := m.Called(ctx, partnerID, amount, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEvent), args.Error(1)
}

func (m *MockPostingService) PostDisbursement(ctx context.Context, loanID string, actorUserID string) (*domain.DisbursementRecord, error) {
	args := m.Called(ctx, loanID, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisbursementRecord), args.Error(1)
}

func (m *MockPostingService) PostRepayment(ctx context.Context, installmentID string, amount int64, meta dto.RepaymentMeta, actorUserID string) (*portssvc.RepaymentResult, error) {
	args := m.Called(ctx, installmentID, amount, meta, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.RepaymentResult), args.Error(1)
}

func (m *MockPostingService) PostRepaymentAcrossInstallments(ctx context.Context, loanID string, amount int64, meta dto.RepaymentMeta, actorUserID string) (*portssvc.RepaymentResult, error) {
	args := m.Called(ctx, loanID, amount, meta, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.RepaymentResult), args.Error(1)
}

func (m *MockPostingService) GetAccountByPartnerID(ctx context.Context, partnerID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockPostingService) ListEvents(ctx context.Context, accountID string) ([]domain.LedgerEvent, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEvent), args.Error(1)
}

func (m *MockPostingService) VerifyAccountEvents(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type CapitalHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPostingService *MockPostingService
	partnerID          string
}

func (suite *CapitalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockPostingService = new(MockPostingService)
	suite.partnerID = uuid.NewString()

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCapitalRoutes(v1, suite.mockPostingService)
}

// --- Test Cases ---

func (suite *CapitalHandlerTestSuite) TestDeposit_Success() {
	actorID := uuid.NewString()
	event := &domain.LedgerEvent{
		EventID:       uuid.NewString(),
		AccountID:     uuid.NewString(),
		EventType:     domain.EventDeposit,
		Amount:        15_000_000,
		BeforeBalance: 0,
		AfterBalance:  15_000_000,
	}
	suite.mockPostingService.On("Deposit", mock.Anything, suite.partnerID, int64(15_000_000), actorID).Return(event, nil).Once()

	body, _ := json.Marshal(dto.DepositRequest{Amount: 15_000_000})
	url := fmt.Sprintf("/api/v1/lenders/%s/deposits", suite.partnerID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-ID", actorID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EventResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(event.EventID, resp.EventID)
	suite.Equal(int64(15_000_000), resp.AfterBalance)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *CapitalHandlerTestSuite) TestDeposit_MissingActorDefaultsToSystem() {
	event := &domain.LedgerEvent{EventID: uuid.NewString(), EventType: domain.EventDeposit, Amount: 1_000, AfterBalance: 1_000}
	suite.mockPostingService.On("Deposit", mock.Anything, suite.partnerID, int64(1_000), "system").Return(event, nil).Once()

	body, _ := json.Marshal(dto.DepositRequest{Amount: 1_000})
	url := fmt.Sprintf("/api/v1/lenders/%s/deposits", suite.partnerID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockPostingService.AssertExpectations(suite.T())
}

func (suite *CapitalHandlerTestSuite) TestDeposit_InvalidBody() {
	url := fmt.Sprintf("/api/v1/lenders/%s/deposits", suite.partnerID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(`{"amount": -5}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPostingService.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CapitalHandlerTestSuite) TestWithdraw_InsufficientBalance() {
	suite.mockPostingService.On("Withdraw", mock.Anything, suite.partnerID, int64(500), "system").Return(nil, apperrors.ErrInsufficientBalance).Once()

	body, _ := json.Marshal(dto.WithdrawRequest{Amount: 500})
	url := fmt.Sprintf("/api/v1/lenders/%s/withdrawals", suite.partnerID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *CapitalHandlerTestSuite) TestGetBalance_Success() {
	account := &domain.LedgerAccount{
		AccountID:               uuid.NewString(),
		PartnerID:               suite.partnerID,
		TotalDeposit:            10_000_000,
		TotalDisbursedPrincipal: 4_000_000,
		OutstandingPrincipal:    4_000_000,
		IsActive:                true,
	}
	suite.mockPostingService.On("GetAccountByPartnerID", mock.Anything, suite.partnerID).Return(account, nil).Once()

	url := fmt.Sprintf("/api/v1/lenders/%s/balance", suite.partnerID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(6_000_000), resp.AvailableBalance)
	suite.Equal(int64(4_000_000), resp.OutstandingPrincipal)
}

func (suite *CapitalHandlerTestSuite) TestGetBalance_NotFound() {
	suite.mockPostingService.On("GetAccountByPartnerID", mock.Anything, suite.partnerID).Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/lenders/%s/balance", suite.partnerID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CapitalHandlerTestSuite) TestVerifyEvents_Inconsistent() {
	account := &domain.LedgerAccount{AccountID: uuid.NewString(), PartnerID: suite.partnerID, IsActive: true}
	suite.mockPostingService.On("GetAccountByPartnerID", mock.Anything, suite.partnerID).Return(account, nil).Once()
	suite.mockPostingService.On("VerifyAccountEvents", mock.Anything, account.AccountID).
		Return(apperrors.NewInvariantViolation("replay-mismatch", "account %s drifted", account.AccountID)).Once()

	url := fmt.Sprintf("/api/v1/lenders/%s/reconciliation", suite.partnerID)
	req, _ := http.NewRequest(http.MethodPost, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	// Invariant violations must never leak detail to the caller.
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "drifted")
}

// --- Run Test Suite ---
func TestCapitalHandler(t *testing.T) {
	suite.Run(t, new(CapitalHandlerTestSuite))
}
