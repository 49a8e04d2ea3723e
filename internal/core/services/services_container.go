package services

import (
	portsrepo "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/repositories"
	portssvc "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/platform/cache"
	"github.com/bilalcinal/WhereDoUSpend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	container.Account = NewAccountService(repos.AccountRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Tag = NewTagService(repos.TagRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, repos.TagRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.CategoryRepo)
	container.Recurring = NewRecurringService(repos.RecurringRepo, repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo)

	reportCache := cache.NewRedisReportCache(cfg.RedisAddr, cfg.ReportCacheTTL)
	container.Reporting = NewReportingService(repos.ReportingRepo, WithReportCache(reportCache))

	return container
}

// Compile-time interface implementation checks
var (
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.CategorySvcFacade    = (*categoryService)(nil)
	_ portssvc.TagSvcFacade         = (*tagService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.BudgetSvcFacade      = (*budgetService)(nil)
	_ portssvc.RecurringSvcFacade   = (*recurringService)(nil)
	_ portssvc.ReportingService     = (*reportingService)(nil)
)
