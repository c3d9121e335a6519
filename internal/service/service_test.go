package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
	"github.com/munimapp/munim/internal/storage/recycle"
	"github.com/munimapp/munim/internal/storage/sqlite"
)

type testEnv struct {
	store storage.Store
	bin   *recycle.Bin
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	store, err := sqlite.New(filepath.Join(dir, "ledger.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	bin, err := recycle.Open(filepath.Join(dir, "bin.db"), 0)
	if err != nil {
		t.Fatalf("Failed to open bin: %v", err)
	}
	t.Cleanup(func() { bin.Close() })

	return &testEnv{store: store, bin: bin}
}

// seedAccounts creates a category with two accounts in the default book
// and returns their ids.
func (e *testEnv) seedAccounts(t *testing.T) (cashID, salesID string) {
	t.Helper()
	ctx := context.Background()

	category := &models.Category{BookID: models.DefaultBookID, Name: "Trading", NormalSide: models.DebitNormal}
	if err := e.store.CreateCategory(ctx, category); err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}

	cash := &models.Account{BookID: models.DefaultBookID, CategoryID: category.ID, Name: "Cash", Type: models.AccountAsset}
	if err := e.store.CreateAccount(ctx, cash); err != nil {
		t.Fatalf("Failed to create cash account: %v", err)
	}
	sales := &models.Account{BookID: models.DefaultBookID, CategoryID: category.ID, Name: "Sales", Type: models.AccountRevenue}
	if err := e.store.CreateAccount(ctx, sales); err != nil {
		t.Fatalf("Failed to create sales account: %v", err)
	}
	return cash.ID, sales.ID
}

func balancedDraft(cashID, salesID string, amount float64) models.TransactionDraft {
	return models.TransactionDraft{
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Sale",
		Entries: []models.TransactionEntry{
			{AccountID: cashID, Amount: amount, Type: models.Debit},
			{AccountID: salesID, Amount: amount, Type: models.Credit},
		},
	}
}
