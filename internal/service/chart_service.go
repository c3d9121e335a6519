package service

import (
	"context"
	"log/slog"

	"github.com/munimapp/munim/internal/ledger"
	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
	"github.com/munimapp/munim/internal/storage/recycle"
)

// ChartService manages the chart of accounts: categories and the accounts
// inside them, plus the derived rollup views.
type ChartService struct {
	store storage.Store
	bin   *recycle.Bin
}

// NewChartService creates a new ChartService.
func NewChartService(store storage.Store, bin *recycle.Bin) *ChartService {
	return &ChartService{store: store, bin: bin}
}

// Categories returns the book's categories with member accounts and
// balances attached.
func (s *ChartService) Categories(ctx context.Context, bookID string) ([]models.CategoryWithDetails, error) {
	categories, accounts, transactions, err := s.loadBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return ledger.CategoriesWithDetails(categories, accounts, transactions), nil
}

// CreateCategory adds a category. When no side is given, the name keyword
// heuristic picks the default; either way the decision is stored and
// never silently revisited.
func (s *ChartService) CreateCategory(ctx context.Context, bookID, name string, side models.NormalSide) (*models.Category, error) {
	if side == "" {
		side = ledger.SuggestNormalSide(name)
	}
	category := &models.Category{BookID: bookID, Name: name, NormalSide: side}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		slog.Error("CreateCategory failed", "book_id", bookID, "name", name, "error", err)
		return nil, err
	}
	slog.Info("Category created", "book_id", bookID, "category_id", category.ID, "normal_side", side)
	return category, nil
}

// DeleteCategory soft-deletes an empty category.
func (s *ChartService) DeleteCategory(ctx context.Context, bookID, id string) error {
	category, err := s.store.GetCategory(ctx, bookID, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteCategory(ctx, bookID, id); err != nil {
		slog.Error("DeleteCategory failed", "book_id", bookID, "category_id", id, "error", err)
		return err
	}
	if err := s.bin.Recycle(models.RecycledCategory, bookID, id, category); err != nil {
		slog.Warn("Failed to recycle category", "category_id", id, "error", err)
	}
	slog.Info("Category deleted", "book_id", bookID, "category_id", id)
	return nil
}

// Accounts returns the book's accounts with all-time balances attached.
func (s *ChartService) Accounts(ctx context.Context, bookID string) ([]models.AccountWithBalance, error) {
	categories, accounts, transactions, err := s.loadBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return ledger.AccountsWithBalances(accounts, categories, transactions), nil
}

// CreateAccount adds an account to a category of the same book.
func (s *ChartService) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	if _, err := s.store.GetCategory(ctx, account.BookID, account.CategoryID); err != nil {
		return nil, err
	}
	if err := s.store.CreateAccount(ctx, account); err != nil {
		slog.Error("CreateAccount failed", "book_id", account.BookID, "name", account.Name, "error", err)
		return nil, err
	}
	slog.Info("Account created", "book_id", account.BookID, "account_id", account.ID)
	return account, nil
}

// UpdateAccount replaces an account's fields.
func (s *ChartService) UpdateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	if _, err := s.store.GetCategory(ctx, account.BookID, account.CategoryID); err != nil {
		return nil, err
	}
	if err := s.store.UpdateAccount(ctx, account); err != nil {
		slog.Error("UpdateAccount failed", "account_id", account.ID, "error", err)
		return nil, err
	}
	slog.Info("Account updated", "book_id", account.BookID, "account_id", account.ID)
	return account, nil
}

// DeleteAccount soft-deletes an account with no posted entries.
func (s *ChartService) DeleteAccount(ctx context.Context, bookID, id string) error {
	account, err := s.store.GetAccount(ctx, bookID, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteAccount(ctx, bookID, id); err != nil {
		slog.Error("DeleteAccount failed", "book_id", bookID, "account_id", id, "error", err)
		return err
	}
	if err := s.bin.Recycle(models.RecycledAccount, bookID, id, account); err != nil {
		slog.Warn("Failed to recycle account", "account_id", id, "error", err)
	}
	slog.Info("Account deleted", "book_id", bookID, "account_id", id)
	return nil
}

// DeleteAccounts deletes several accounts, stopping at the first failure.
func (s *ChartService) DeleteAccounts(ctx context.Context, bookID string, ids []string) error {
	for _, id := range ids {
		if err := s.DeleteAccount(ctx, bookID, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *ChartService) loadBook(ctx context.Context, bookID string) ([]models.Category, []models.Account, []models.Transaction, error) {
	if _, err := s.store.GetBook(ctx, bookID); err != nil {
		return nil, nil, nil, err
	}
	categories, err := s.store.ListCategories(ctx, bookID)
	if err != nil {
		return nil, nil, nil, err
	}
	accounts, err := s.store.ListAccounts(ctx, bookID)
	if err != nil {
		return nil, nil, nil, err
	}
	transactions, err := s.store.ListTransactions(ctx, bookID)
	if err != nil {
		return nil, nil, nil, err
	}
	return categories, accounts, transactions, nil
}
