package services

import (
	portsrepo "github.com/julofinance/lender-ledger/internal/core/ports/repositories"
	portssvc "github.com/julofinance/lender-ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Partner = NewPartnerService(repos.PartnerRepo, repos.LedgerRepo, repos.RateRepo)
	container.Loan = NewLoanService(repos.LoanRepo, repos.PartnerRepo)
	container.Posting = NewPostingService(repos.LedgerRepo, repos.PartnerRepo, repos.RateRepo, repos.LoanRepo, repos.PostingRepo)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.PartnerSvcFacade = (*partnerService)(nil)
	_ portssvc.LoanSvcFacade    = (*loanService)(nil)
	_ portssvc.PostingSvcFacade = (*postingService)(nil)
)
