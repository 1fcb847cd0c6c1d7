package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/julofinance/lender-ledger/internal/apperrors"
	"github.com/julofinance/lender-ledger/internal/core/domain"
	portssvc "github.com/julofinance/lender-ledger/internal/core/ports/services"
	"github.com/julofinance/lender-ledger/internal/core/services"
	"github.com/julofinance/lender-ledger/internal/dto"
)

// --- Test Suite Setup ---
type LoanServiceTestSuite struct {
	suite.Suite
	mockLoanRepo    *MockLoanRepository
	mockPartnerRepo *MockPartnerRepository
	service         portssvc.LoanSvcFacade
	lender          domain.Partner
	product         domain.LoanProduct
	actorID         string
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockPartnerRepo = new(MockPartnerRepository)
	suite.service = services.NewLoanService(suite.mockLoanRepo, suite.mockPartnerRepo)

	suite.actorID = uuid.NewString()
	suite.lender = domain.Partner{
		PartnerID: uuid.NewString(),
		Name:      "Acme Capital",
		Type:      domain.PartnerLender,
		IsActive:  true,
	}
	suite.product = domain.LoanProduct{
		ProductID:         uuid.NewString(),
		Name:              "Cash Loan 30d",
		OriginationFeePct: decimal.RequireFromString("0.05"),
	}
}

func (suite *LoanServiceTestSuite) registerLoanRequest() dto.RegisterLoanRequest {
	return dto.RegisterLoanRequest{
		PartnerID:  suite.lender.PartnerID,
		BorrowerID: uuid.NewString(),
		ProductID:  suite.product.ProductID,
		Amount:     300_000,
		Installments: []dto.InstallmentInput{
			{Sequence: 1, DueDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), Principal: 150_000, Interest: 30_000},
			{Sequence: 2, DueDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), Principal: 150_000, Interest: 30_000},
		},
	}
}

// --- Test Cases ---

func (suite *LoanServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	req := dto.CreateProductRequest{Name: "Cash Loan 30d", OriginationFeePct: decimal.RequireFromString("0.05")}
	suite.mockLoanRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.LoanProduct")).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.NotEmpty(product.ProductID)
	suite.True(product.OriginationFeePct.Equal(req.OriginationFeePct))
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestCreateProduct_FeeOutOfRange() {
	ctx := context.Background()
	req := dto.CreateProductRequest{Name: "Bad Product", OriginationFeePct: decimal.RequireFromString("1.5")}

	product, err := suite.service.CreateProduct(ctx, req, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(product)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestRegisterLoan_Success() {
	ctx := context.Background()
	req := suite.registerLoanRequest()
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.lender.PartnerID).Return(&suite.lender, nil).Once()
	suite.mockLoanRepo.On("FindProductByID", ctx, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockLoanRepo.On("SaveLoan", ctx, mock.AnythingOfType("domain.Loan"), mock.AnythingOfType("[]domain.Installment")).Return(nil).Once()

	loan, err := suite.service.RegisterLoan(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(loan)
	suite.NotEmpty(loan.LoanID)
	suite.Equal(domain.LoanPending, loan.Status)
	suite.Equal(int64(300_000), loan.Amount)
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestRegisterLoan_ScheduleMismatch() {
	ctx := context.Background()
	req := suite.registerLoanRequest()
	req.Amount = 400_000 // schedule still sums to 300,000
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.lender.PartnerID).Return(&suite.lender, nil).Once()
	suite.mockLoanRepo.On("FindProductByID", ctx, suite.product.ProductID).Return(&suite.product, nil).Once()

	loan, err := suite.service.RegisterLoan(ctx, req, suite.actorID)

	suite.Require().ErrorIs(err, services.ErrScheduleMismatch)
	suite.Nil(loan)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "SaveLoan", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestRegisterLoan_NotALender() {
	ctx := context.Background()
	merchant := domain.Partner{PartnerID: uuid.NewString(), Type: domain.PartnerMerchant, IsActive: true}
	req := suite.registerLoanRequest()
	req.PartnerID = merchant.PartnerID
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, merchant.PartnerID).Return(&merchant, nil).Once()

	loan, err := suite.service.RegisterLoan(ctx, req, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrNotALender)
	suite.Nil(loan)
}

func (suite *LoanServiceTestSuite) TestRegisterLoan_MissingFields() {
	ctx := context.Background()
	req := suite.registerLoanRequest()
	req.BorrowerID = ""

	loan, err := suite.service.RegisterLoan(ctx, req, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(loan)
	suite.mockPartnerRepo.AssertNotCalled(suite.T(), "FindPartnerByID", mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestGetLoanByID_NotFound() {
	ctx := context.Background()
	loanID := uuid.NewString()
	suite.mockLoanRepo.On("FindLoanByID", ctx, loanID).Return(nil, apperrors.ErrNotFound).Once()

	loan, err := suite.service.GetLoanByID(ctx, loanID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(loan)
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
