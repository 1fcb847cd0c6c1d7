package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/julofinance/lender-ledger/internal/apperrors"
	"github.com/julofinance/lender-ledger/internal/core/allocation"
	"github.com/julofinance/lender-ledger/internal/core/domain"
	portsrepo "github.com/julofinance/lender-ledger/internal/core/ports/repositories"
	portssvc "github.com/julofinance/lender-ledger/internal/core/ports/services"
	"github.com/julofinance/lender-ledger/internal/dto"
	"github.com/julofinance/lender-ledger/internal/middleware"
)

var (
	ErrLoanNotPending      = errors.New("loan is not pending disbursement")
	ErrInstallmentPaid     = errors.New("installment is already fully paid")
	ErrNoUnpaidInstallment = errors.New("loan has no unpaid installments")
	ErrAccountArchived     = errors.New("ledger account is archived")
	ErrAmountNotPositive   = errors.New("amount must be positive")
)

// postingService is the ledger posting orchestrator. Every balance mutation
// runs as one database transaction holding an exclusive row lock on the
// lender's account, so concurrent postings against the same lender can never
// interleave their before/after snapshots. The engine never retries and never
// deduplicates; callers own at-most-once delivery per external transaction.
type postingService struct {
	ledgerRepo  portsrepo.LedgerRepositoryWithTx
	partnerRepo portsrepo.PartnerRepository
	rateRepo    portsrepo.RateRepository
	loanRepo    portsrepo.LoanRepositoryWithTx
	postingRepo portsrepo.PostingRecordRepository
}

// NewPostingService creates a new PostingService.
func NewPostingService(
	ledgerRepo portsrepo.LedgerRepositoryWithTx,
	partnerRepo portsrepo.PartnerRepository,
	rateRepo portsrepo.RateRepository,
	loanRepo portsrepo.LoanRepositoryWithTx,
	postingRepo portsrepo.PostingRecordRepository,
) portssvc.PostingSvcFacade {
	return &postingService{
		ledgerRepo:  ledgerRepo,
		partnerRepo: partnerRepo,
		rateRepo:    rateRepo,
		loanRepo:    loanRepo,
		postingRepo: postingRepo,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// requireLender loads the partner and rejects non-lenders before any mutation.
func (s *postingService) requireLender(ctx context.Context, partnerID string) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if !partner.IsLender() {
		return nil, apperrors.ErrNotALender
	}
	return partner, nil
}

// Deposit credits lender capital.
func (s *postingService) Deposit(ctx context.Context, partnerID string, amount int64, actorUserID string) (*domain.LedgerEvent, error) {
	return s.postCapital(ctx, partnerID, amount, domain.EventDeposit, actorUserID)
}

// Withdraw debits lender capital, guarded by the available balance.
func (s *postingService) Withdraw(ctx context.Context, partnerID string, amount int64, actorUserID string) (*domain.LedgerEvent, error) {
	return s.postCapital(ctx, partnerID, amount, domain.EventWithdraw, actorUserID)
}

// postCapital is the shared deposit/withdraw posting path.
func (s *postingService) postCapital(ctx context.Context, partnerID string, amount int64, eventType domain.EventType, actorUserID string) (*domain.LedgerEvent, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive.Error())
	}
	if _, err := s.requireLender(ctx, partnerID); err != nil {
		return nil, err
	}

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.ledgerRepo.Rollback(ctx, tx) }()

	account, err := s.ledgerRepo.FindAccountByPartnerIDForUpdate(ctx, tx, partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNoLedgerAccount
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, ErrAccountArchived
	}

	before := account.AvailableBalance()
	switch eventType {
	case domain.EventDeposit:
		account.TotalDeposit += amount
	case domain.EventWithdraw:
		if amount > before {
			return nil, apperrors.ErrInsufficientBalance
		}
		account.TotalWithdrawal += amount
	default:
		return nil, fmt.Errorf("%w: unsupported capital event type %s", apperrors.ErrValidation, eventType)
	}

	if err := account.CheckNonNegative(); err != nil {
		return nil, err
	}
	if err := account.CheckPrincipalConservation(); err != nil {
		return nil, err
	}

	event := domain.LedgerEvent{
		EventID:       uuid.NewString(),
		AccountID:     account.AccountID,
		EventType:     eventType,
		Amount:        amount,
		BeforeBalance: before,
		AfterBalance:  account.AvailableBalance(),
		CreatedAt:     time.Now(),
		CreatedBy:     actorUserID,
	}
	if err := event.CheckSnapshot(); err != nil {
		return nil, err
	}

	account.LastUpdatedAt = event.CreatedAt
	account.LastUpdatedBy = actorUserID
	if err := s.ledgerRepo.UpdateAccountCounters(ctx, tx, *account); err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.AppendEvent(ctx, tx, event); err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Capital posting committed",
		slog.String("event_type", string(eventType)),
		slog.String("partner_id", partnerID),
		slog.Int64("amount", amount),
		slog.Int64("balance_after", event.AfterBalance),
	)
	return &event, nil
}

// PostDisbursement allocates a loan disbursement and posts the ledger event.
func (s *postingService) PostDisbursement(ctx context.Context, loanID string, actorUserID string) (*domain.DisbursementRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.Status != domain.LoanPending {
		return nil, ErrLoanNotPending
	}
	product, err := s.loanRepo.FindProductByID(ctx, loan.ProductID)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireLender(ctx, loan.PartnerID); err != nil {
		return nil, err
	}
	rate, err := s.rateRepo.FindEffectiveRateByPartnerID(ctx, loan.PartnerID)
	if err != nil {
		return nil, err
	}

	totalProvision := allocation.FloorFraction(loan.Amount, product.OriginationFeePct)
	lenderProvision, juloProvision := allocation.Split(totalProvision, rate.ProvisionRate)
	borrowerReceived := loan.Amount - totalProvision

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.ledgerRepo.Rollback(ctx, tx) }()

	account, err := s.ledgerRepo.FindAccountByPartnerIDForUpdate(ctx, tx, loan.PartnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNoLedgerAccount
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, ErrAccountArchived
	}

	before := account.AvailableBalance()
	if loan.Amount > before {
		return nil, apperrors.ErrInsufficientBalance
	}

	account.TotalDisbursedPrincipal += loan.Amount
	account.OutstandingPrincipal += loan.Amount
	account.TotalReceivedProvision += totalProvision
	after := account.AvailableBalance()

	// The net balance effect is exactly the amount handed to the borrower.
	if after != before-borrowerReceived {
		return nil, apperrors.NewInvariantViolation("disbursement-balance",
			"loan %s: balance moved by %d, expected -%d", loan.LoanID, after-before, borrowerReceived)
	}
	if err := account.CheckNonNegative(); err != nil {
		return nil, err
	}
	if err := account.CheckPrincipalConservation(); err != nil {
		return nil, err
	}

	now := time.Now()
	record := domain.DisbursementRecord{
		RecordID:                uuid.NewString(),
		LoanID:                  loan.LoanID,
		AccountID:               account.AccountID,
		LenderDisbursed:         loan.Amount,
		TotalProvisionReceived:  totalProvision,
		LenderProvisionReceived: lenderProvision,
		JuloProvisionReceived:   juloProvision,
		BorrowerReceived:        borrowerReceived,
		LenderBalanceBefore:     before,
		LenderBalanceAfter:      after,
		CreatedAt:               now,
		CreatedBy:               actorUserID,
	}
	if err := record.CheckConservation(); err != nil {
		return nil, err
	}

	event := domain.LedgerEvent{
		EventID:       uuid.NewString(),
		AccountID:     account.AccountID,
		EventType:     domain.EventDisbursement,
		Amount:        borrowerReceived,
		BeforeBalance: before,
		AfterBalance:  after,
		CreatedAt:     now,
		CreatedBy:     actorUserID,
	}

	account.LastUpdatedAt = now
	account.LastUpdatedBy = actorUserID
	if err := s.ledgerRepo.UpdateAccountCounters(ctx, tx, *account); err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.AppendEvent(ctx, tx, event); err != nil {
		return nil, err
	}
	if err := s.postingRepo.SaveDisbursementRecord(ctx, tx, record); err != nil {
		return nil, err
	}
	if err := s.loanRepo.UpdateLoanStatus(ctx, tx, loan.LoanID, domain.LoanDisbursed, actorUserID); err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Disbursement committed",
		slog.String("loan_id", loan.LoanID),
		slog.Int64("lender_disbursed", record.LenderDisbursed),
		slog.Int64("borrower_received", record.BorrowerReceived),
		slog.Int64("total_provision", record.TotalProvisionReceived),
	)
	return &record, nil
}

// PostRepayment applies one verified payment to a single installment.
func (s *postingService) PostRepayment(ctx context.Context, installmentID string, amount int64, meta dto.RepaymentMeta, actorUserID string) (*portssvc.RepaymentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive.Error())
	}

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.ledgerRepo.Rollback(ctx, tx) }()

	installment, err := s.loanRepo.FindInstallmentByIDForUpdate(ctx, tx, installmentID)
	if err != nil {
		return nil, err
	}
	if installment.IsFullyPaid() {
		return nil, ErrInstallmentPaid
	}
	loan, err := s.loanRepo.FindLoanByID(ctx, installment.LoanID)
	if err != nil {
		return nil, err
	}
	account, err := s.ledgerRepo.FindAccountByPartnerIDForUpdate(ctx, tx, loan.PartnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNoLedgerAccount
		}
		return nil, err
	}
	// Rates are resolved at the time of the repayment event, not frozen at
	// loan origination.
	rate, err := s.rateRepo.FindEffectiveRateByPartnerID(ctx, loan.PartnerID)
	if err != nil {
		return nil, err
	}

	record, excess, err := s.applyRepayment(ctx, tx, account, installment, amount, *rate, meta, actorUserID)
	if err != nil {
		return nil, err
	}

	if err := s.settleLoanIfPaid(ctx, tx, loan.LoanID, actorUserID); err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Repayment committed",
		slog.String("installment_id", installmentID),
		slog.Int64("amount", amount),
		slog.Int64("excess", excess),
	)
	return &portssvc.RepaymentResult{Records: []domain.RepaymentAllocationRecord{*record}, Excess: excess}, nil
}

// PostRepaymentAcrossInstallments applies one payment across a loan's unpaid
// installments in due-date order, within a single transaction.
func (s *postingService) PostRepaymentAcrossInstallments(ctx context.Context, loanID string, amount int64, meta dto.RepaymentMeta, actorUserID string) (*portssvc.RepaymentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive.Error())
	}
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.ledgerRepo.Rollback(ctx, tx) }()

	installments, err := s.loanRepo.FindUnpaidInstallmentsByLoanForUpdate(ctx, tx, loanID)
	if err != nil {
		return nil, err
	}
	if len(installments) == 0 {
		return nil, ErrNoUnpaidInstallment
	}
	account, err := s.ledgerRepo.FindAccountByPartnerIDForUpdate(ctx, tx, loan.PartnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNoLedgerAccount
		}
		return nil, err
	}
	rate, err := s.rateRepo.FindEffectiveRateByPartnerID(ctx, loan.PartnerID)
	if err != nil {
		return nil, err
	}

	result := &portssvc.RepaymentResult{}
	remaining := amount
	for i := range installments {
		if remaining == 0 {
			break
		}
		record, excess, err := s.applyRepayment(ctx, tx, account, &installments[i], remaining, *rate, meta, actorUserID)
		if err != nil {
			return nil, err
		}
		result.Records = append(result.Records, *record)
		remaining = excess
	}
	result.Excess = remaining

	if err := s.settleLoanIfPaid(ctx, tx, loanID, actorUserID); err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Loan repayment committed",
		slog.String("loan_id", loanID),
		slog.Int64("amount", amount),
		slog.Int("installments_touched", len(result.Records)),
		slog.Int64("excess", result.Excess),
	)
	return result, nil
}

// applyRepayment runs the waterfall for one installment and posts its ledger
// effects inside the caller's transaction. The account row must already be
// locked. Returns the persisted record and the amount the installment did not
// consume.
func (s *postingService) applyRepayment(
	ctx context.Context,
	tx pgx.Tx,
	account *domain.LedgerAccount,
	installment *domain.Installment,
	amount int64,
	rate domain.LenderServiceRate,
	meta dto.RepaymentMeta,
	actorUserID string,
) (*domain.RepaymentAllocationRecord, int64, error) {
	alloc := allocation.Waterfall(*installment, amount)

	installment.PaidLateFee += alloc.LateFee
	installment.PaidInterest += alloc.Interest
	installment.PaidPrincipal += alloc.Principal

	// A paid field exceeding its total means the waterfall math is broken.
	if installment.PaidLateFee > installment.LateFeeAmount ||
		installment.PaidInterest > installment.InstallmentInterest ||
		installment.PaidPrincipal > installment.InstallmentPrincipal {
		return nil, 0, apperrors.NewInvariantViolation("installment-overpaid",
			"installment %s: paid fields exceed totals after allocation", installment.InstallmentID)
	}

	now := time.Now()
	if installment.IsFullyPaid() {
		paidDate := meta.TransactionDate
		installment.PaidDate = &paidDate
	}
	installment.LastUpdatedAt = now
	installment.LastUpdatedBy = actorUserID

	lenderPrincipal, juloPrincipal := allocation.Split(alloc.Principal, rate.PrincipalRate)
	lenderInterest, juloInterest := allocation.Split(alloc.Interest, rate.InterestRate)
	lenderLateFee, juloLateFee := allocation.Split(alloc.LateFee, rate.LateFeeRate)

	before := account.AvailableBalance()
	account.TotalReceivedPrincipal += alloc.Principal
	account.TotalReceivedInterest += alloc.Interest
	account.TotalReceivedLateFee += alloc.LateFee
	account.OutstandingPrincipal -= alloc.Principal
	after := account.AvailableBalance()

	if after != before+alloc.Applied() {
		return nil, 0, apperrors.NewInvariantViolation("repayment-balance",
			"installment %s: balance moved by %d, expected +%d", installment.InstallmentID, after-before, alloc.Applied())
	}
	if err := account.CheckNonNegative(); err != nil {
		return nil, 0, err
	}
	if err := account.CheckPrincipalConservation(); err != nil {
		return nil, 0, err
	}

	record := domain.RepaymentAllocationRecord{
		RecordID:                 uuid.NewString(),
		InstallmentID:            installment.InstallmentID,
		AccountID:                account.AccountID,
		BorrowerRepaid:           alloc.Applied(),
		BorrowerRepaidPrincipal:  alloc.Principal,
		BorrowerRepaidInterest:   alloc.Interest,
		BorrowerRepaidLateFee:    alloc.LateFee,
		LenderReceivedPrincipal:  lenderPrincipal,
		LenderReceivedInterest:   lenderInterest,
		LenderReceivedLateFee:    lenderLateFee,
		JuloFeeReceivedPrincipal: juloPrincipal,
		JuloFeeReceivedInterest:  juloInterest,
		JuloFeeReceivedLateFee:   juloLateFee,
		LenderBalanceBefore:      before,
		LenderBalanceAfter:       after,
		TransactionDate:          meta.TransactionDate,
		Source:                   meta.Source,
		CreatedAt:                now,
		CreatedBy:                actorUserID,
	}
	if err := record.CheckConservation(); err != nil {
		return nil, 0, err
	}

	event := domain.LedgerEvent{
		EventID:       uuid.NewString(),
		AccountID:     account.AccountID,
		EventType:     domain.EventRepayment,
		Amount:        alloc.Applied(),
		BeforeBalance: before,
		AfterBalance:  after,
		CreatedAt:     now,
		CreatedBy:     actorUserID,
	}

	account.LastUpdatedAt = now
	account.LastUpdatedBy = actorUserID
	if err := s.loanRepo.UpdateInstallmentPaid(ctx, tx, *installment); err != nil {
		return nil, 0, err
	}
	if err := s.ledgerRepo.UpdateAccountCounters(ctx, tx, *account); err != nil {
		return nil, 0, err
	}
	if err := s.ledgerRepo.AppendEvent(ctx, tx, event); err != nil {
		return nil, 0, err
	}
	if err := s.postingRepo.SaveRepaymentRecord(ctx, tx, record); err != nil {
		return nil, 0, err
	}

	return &record, alloc.Remainder, nil
}

// settleLoanIfPaid marks the loan paid off when no unpaid installment remains.
func (s *postingService) settleLoanIfPaid(ctx context.Context, tx pgx.Tx, loanID string, actorUserID string) error {
	unpaid, err := s.loanRepo.FindUnpaidInstallmentsByLoanForUpdate(ctx, tx, loanID)
	if err != nil {
		return err
	}
	if len(unpaid) == 0 {
		return s.loanRepo.UpdateLoanStatus(ctx, tx, loanID, domain.LoanPaidOff, actorUserID)
	}
	return nil
}

// GetAccountByPartnerID retrieves a lender's ledger account.
func (s *postingService) GetAccountByPartnerID(ctx context.Context, partnerID string) (*domain.LedgerAccount, error) {
	return s.ledgerRepo.FindAccountByPartnerID(ctx, partnerID)
}

// ListEvents retrieves an account's event log in commit order.
func (s *postingService) ListEvents(ctx context.Context, accountID string) ([]domain.LedgerEvent, error) {
	return s.ledgerRepo.ListEventsByAccountID(ctx, accountID)
}

// VerifyAccountEvents replays the event log and checks it reconstructs the
// account's current available balance.
func (s *postingService) VerifyAccountEvents(ctx context.Context, accountID string) error {
	account, err := s.ledgerRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	events, err := s.ledgerRepo.ListEventsByAccountID(ctx, accountID)
	if err != nil {
		return err
	}
	replayed, err := domain.ReplayEvents(events)
	if err != nil {
		return err
	}
	if replayed != account.AvailableBalance() {
		return apperrors.NewInvariantViolation("replay-mismatch",
			"account %s: replayed balance %d does not match current available balance %d",
			accountID, replayed, account.AvailableBalance())
	}
	return nil
}
