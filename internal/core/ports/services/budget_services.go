package services

import (
	"context"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
)

// BudgetSvcFacade defines operations for managing monthly category budgets
type BudgetSvcFacade interface {
	// CreateBudget creates a budget for a category and month. At most one
	// budget may exist per category and month.
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// GetBudgetByID retrieves a budget owned by the user.
	GetBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves the user's budgets, optionally filtered to a month.
	ListBudgets(ctx context.Context, userID string, year, month int) ([]domain.Budget, error)

	// UpdateBudget changes the amount of an existing budget.
	UpdateBudget(ctx context.Context, userID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	// DeleteBudget marks a budget as deleted (soft delete).
	DeleteBudget(ctx context.Context, userID string, budgetID string) error
}
