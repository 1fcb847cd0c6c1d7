package services_test

import (
	"context"
	"testing"

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
type PartnerServiceTestSuite struct {
	suite.Suite
	mockPartnerRepo *MockPartnerRepository
	mockLedgerRepo  *MockLedgerRepository
	mockRateRepo    *MockRateRepository
	service         portssvc.PartnerSvcFacade
	lender          domain.Partner
	actorID         string
}

func (suite *PartnerServiceTestSuite) SetupTest() {
	suite.mockPartnerRepo = new(MockPartnerRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockRateRepo = new(MockRateRepository)
	suite.service = services.NewPartnerService(suite.mockPartnerRepo, suite.mockLedgerRepo, suite.mockRateRepo)

	suite.actorID = uuid.NewString()
	suite.lender = domain.Partner{
		PartnerID: uuid.NewString(),
		Name:      "Acme Capital",
		Type:      domain.PartnerLender,
		IsActive:  true,
	}
}

// --- Test Cases ---

func (suite *PartnerServiceTestSuite) TestCreatePartner_Success() {
	ctx := context.Background()
	req := dto.CreatePartnerRequest{Name: "Acme Capital", Type: domain.PartnerLender, Email: "ops@acme.example"}
	suite.mockPartnerRepo.On("SavePartner", ctx, mock.AnythingOfType("domain.Partner")).Return(nil).Once()

	partner, err := suite.service.CreatePartner(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(partner)
	suite.NotEmpty(partner.PartnerID)
	suite.Equal(domain.PartnerLender, partner.Type)
	suite.True(partner.IsActive)
	suite.Equal(suite.actorID, partner.CreatedBy)
	suite.mockPartnerRepo.AssertExpectations(suite.T())
}

func (suite *PartnerServiceTestSuite) TestActivateAsLender_Success() {
	ctx := context.Background()
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.lender.PartnerID).Return(&suite.lender, nil).Once()
	suite.mockLedgerRepo.On("FindAccountByPartnerID", ctx, suite.lender.PartnerID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLedgerRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.LedgerAccount")).Return(nil).Once()

	account, err := suite.service.ActivateAsLender(ctx, suite.lender.PartnerID, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(suite.lender.PartnerID, account.PartnerID)
	suite.True(account.IsActive)
	// A fresh account starts from a zero balance.
	suite.Equal(int64(0), account.AvailableBalance())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *PartnerServiceTestSuite) TestActivateAsLender_NotALender() {
	ctx := context.Background()
	merchant := domain.Partner{PartnerID: uuid.NewString(), Type: domain.PartnerMerchant, IsActive: true}
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, merchant.PartnerID).Return(&merchant, nil).Once()

	account, err := suite.service.ActivateAsLender(ctx, merchant.PartnerID, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrNotALender)
	suite.Nil(account)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *PartnerServiceTestSuite) TestActivateAsLender_AlreadyActivated() {
	ctx := context.Background()
	existing := domain.LedgerAccount{AccountID: uuid.NewString(), PartnerID: suite.lender.PartnerID, IsActive: true}
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.lender.PartnerID).Return(&suite.lender, nil).Once()
	suite.mockLedgerRepo.On("FindAccountByPartnerID", ctx, suite.lender.PartnerID).Return(&existing, nil).Once()

	account, err := suite.service.ActivateAsLender(ctx, suite.lender.PartnerID, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(account)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *PartnerServiceTestSuite) TestActivateAsLender_InactivePartner() {
	ctx := context.Background()
	suite.lender.IsActive = false
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.lender.PartnerID).Return(&suite.lender, nil).Once()

	account, err := suite.service.ActivateAsLender(ctx, suite.lender.PartnerID, suite.actorID)

	suite.Require().ErrorIs(err, services.ErrPartnerInactive)
	suite.Nil(account)
}

func (suite *PartnerServiceTestSuite) TestDeactivateLender_Success() {
	ctx := context.Background()
	account := domain.LedgerAccount{AccountID: uuid.NewString(), PartnerID: suite.lender.PartnerID, IsActive: true}
	suite.mockLedgerRepo.On("FindAccountByPartnerID", ctx, suite.lender.PartnerID).Return(&account, nil).Once()
	suite.mockLedgerRepo.On("ArchiveAccount", ctx, account.AccountID, suite.actorID).Return(nil).Once()

	err := suite.service.DeactivateLender(ctx, suite.lender.PartnerID, suite.actorID)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *PartnerServiceTestSuite) TestDeactivateLender_NoAccount() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("FindAccountByPartnerID", ctx, suite.lender.PartnerID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateLender(ctx, suite.lender.PartnerID, suite.actorID)

	suite.Require().ErrorIs(err, services.ErrNoLedgerAccount)
}

func (suite *PartnerServiceTestSuite) TestSetServiceRate_Success() {
	ctx := context.Background()
	req := dto.SetServiceRateRequest{
		ProvisionRate: decimal.RequireFromString("0.6"),
		PrincipalRate: decimal.RequireFromString("1"),
		InterestRate:  decimal.RequireFromString("0.4"),
		LateFeeRate:   decimal.RequireFromString("0.5"),
	}
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.lender.PartnerID).Return(&suite.lender, nil).Once()
	suite.mockRateRepo.On("SaveRate", ctx, mock.AnythingOfType("domain.LenderServiceRate")).Return(nil).Once()

	rate, err := suite.service.SetServiceRate(ctx, suite.lender.PartnerID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.Equal(suite.lender.PartnerID, rate.PartnerID)
	suite.True(rate.InterestRate.Equal(req.InterestRate))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *PartnerServiceTestSuite) TestSetServiceRate_OutOfRange() {
	ctx := context.Background()
	req := dto.SetServiceRateRequest{
		ProvisionRate: decimal.RequireFromString("1.2"),
		PrincipalRate: decimal.RequireFromString("1"),
		InterestRate:  decimal.RequireFromString("0.4"),
		LateFeeRate:   decimal.RequireFromString("0.5"),
	}
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.lender.PartnerID).Return(&suite.lender, nil).Once()

	rate, err := suite.service.SetServiceRate(ctx, suite.lender.PartnerID, req, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rate)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveRate", mock.Anything, mock.Anything)
}

func TestPartnerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerServiceTestSuite))
}
