package services

import (
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/personal_ledger_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo),
		Import:      NewImportService(repos.TransactionRepo, repos.AccountRepo),
		Chunk:       NewChunkService(repos.TransactionRepo),
		Category:    NewCategoryService(repos.CategoryRepo, repos.TransactionRepo, cfg.CategoryMatchDistance),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo),
		Budget:      NewBudgetService(repos.BudgetRepo, repos.CategoryRepo),
		Reporting:   NewReportingService(repos.ReportingRepo, repos.BudgetRepo),
	}
}

// Compile-time interface checks for every service implementation.
var (
	_ portssvc.AccountSvcFacade     = (*AccountService)(nil)
	_ portssvc.ImportSvcFacade      = (*ImportService)(nil)
	_ portssvc.ChunkSvcFacade       = (*ChunkService)(nil)
	_ portssvc.CategorySvcFacade    = (*CategoryService)(nil)
	_ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
	_ portssvc.BudgetSvcFacade      = (*BudgetService)(nil)
	_ portssvc.ReportingSvcFacade   = (*ReportingService)(nil)
)
