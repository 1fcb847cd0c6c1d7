package services

// ServiceContainer holds all service facades for injection into handlers.
type ServiceContainer struct {
	Partner PartnerSvcFacade
	Loan    LoanSvcFacade
	Posting PostingSvcFacade
}
