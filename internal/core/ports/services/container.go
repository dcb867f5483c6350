package services

// ServiceContainer holds all service facades needed by the command surface.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Import      ImportSvcFacade
	Chunk       ChunkSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Budget      BudgetSvcFacade
	Reporting   ReportingSvcFacade
}
