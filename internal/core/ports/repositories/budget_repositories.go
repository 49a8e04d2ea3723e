package repositories

import (
	"context"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
)

// BudgetRepositoryFacade defines persistence operations for budgets.
type BudgetRepositoryFacade interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// FindBudgetByID retrieves one budget owned by userID.
	FindBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error)

	// FindBudgetForMonth retrieves the budget for one category+month, if any.
	FindBudgetForMonth(ctx context.Context, userID string, categoryID string, year int, month int) (*domain.Budget, error)

	// ListBudgets retrieves all budgets for one calendar month.
	ListBudgets(ctx context.Context, userID string, year int, month int) ([]domain.Budget, error)

	// UpdateBudget updates a budget's amount.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// MarkBudgetDeleted soft-deletes a budget.
	MarkBudgetDeleted(ctx context.Context, userID string, budgetID string, deletedAt time.Time, deletedBy string) error
}
