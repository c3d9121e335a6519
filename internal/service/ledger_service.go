package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/munimapp/munim/internal/ledger"
	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
)

// LedgerService produces the derived read models: windowed account
// ledgers and book-wide dashboard totals.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// AccountLedger computes the ledger for one account over an optional date
// window: opening balance, running-balance entries in chronological
// order, closing balance.
func (s *LedgerService) AccountLedger(ctx context.Context, bookID, accountID string, from, to *time.Time) (*models.AccountLedger, error) {
	account, err := s.store.GetAccount(ctx, bookID, accountID)
	if err != nil {
		return nil, err
	}
	category, err := s.store.GetCategory(ctx, bookID, account.CategoryID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.store.ListTransactions(ctx, bookID)
	if err != nil {
		slog.Error("AccountLedger failed to load transactions", "book_id", bookID, "error", err)
		return nil, err
	}

	side := ledger.NormalSideFor(*account, *category)
	view := ledger.Project(accountID, side, transactions, ledger.Window{From: from, To: to})

	slog.Info("Account ledger computed",
		"book_id", bookID,
		"account_id", accountID,
		"entries", len(view.Entries),
		"normal_side", side,
	)
	return &view, nil
}

// Summary computes the dashboard view: every account with its all-time
// balance plus the book totals (net balances split by sign).
func (s *LedgerService) Summary(ctx context.Context, bookID string) ([]models.AccountWithBalance, models.Totals, error) {
	if _, err := s.store.GetBook(ctx, bookID); err != nil {
		return nil, models.Totals{}, err
	}
	categories, err := s.store.ListCategories(ctx, bookID)
	if err != nil {
		return nil, models.Totals{}, err
	}
	accounts, err := s.store.ListAccounts(ctx, bookID)
	if err != nil {
		return nil, models.Totals{}, err
	}
	transactions, err := s.store.ListTransactions(ctx, bookID)
	if err != nil {
		return nil, models.Totals{}, err
	}

	withBalances := ledger.AccountsWithBalances(accounts, categories, transactions)
	return withBalances, ledger.Totals(withBalances), nil
}
