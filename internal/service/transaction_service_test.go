package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/munimapp/munim/internal/ledger"
	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
)

func TestCreateTransaction(t *testing.T) {
	env := newTestEnv(t)
	cashID, salesID := env.seedAccounts(t)
	svc := NewTransactionService(env.store, env.bin)
	ctx := context.Background()

	txn, err := svc.Create(ctx, models.DefaultBookID, balancedDraft(cashID, salesID, 70))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if txn.ID == "" {
		t.Error("expected id to be assigned")
	}
	if txn.CreatedAt == 0 {
		t.Error("expected created-at to be assigned")
	}

	listed, err := svc.List(ctx, models.DefaultBookID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != txn.ID {
		t.Errorf("listed = %+v, want the created transaction", listed)
	}
}

func TestCreateUnbalancedRejected(t *testing.T) {
	env := newTestEnv(t)
	cashID, salesID := env.seedAccounts(t)
	svc := NewTransactionService(env.store, env.bin)
	ctx := context.Background()

	draft := models.TransactionDraft{
		Date: time.Now(),
		Entries: []models.TransactionEntry{
			{AccountID: cashID, Amount: 100, Type: models.Debit},
			{AccountID: salesID, Amount: 40, Type: models.Credit},
		},
	}
	_, err := svc.Create(ctx, models.DefaultBookID, draft)
	var verr *ledger.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Rule != ledger.RuleBalanced {
		t.Errorf("rule = %q, want %q", verr.Rule, ledger.RuleBalanced)
	}

	// Nothing was persisted.
	listed, err := svc.List(ctx, models.DefaultBookID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("listed = %d transactions, want 0", len(listed))
	}
}

func TestCreateInUnknownBook(t *testing.T) {
	env := newTestEnv(t)
	cashID, salesID := env.seedAccounts(t)
	svc := NewTransactionService(env.store, env.bin)

	_, err := svc.Create(context.Background(), "book_missing", balancedDraft(cashID, salesID, 10))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateTransactionRevalidates(t *testing.T) {
	env := newTestEnv(t)
	cashID, salesID := env.seedAccounts(t)
	svc := NewTransactionService(env.store, env.bin)
	ctx := context.Background()

	txn, err := svc.Create(ctx, models.DefaultBookID, balancedDraft(cashID, salesID, 70))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	bad := models.TransactionDraft{
		Date: txn.Date,
		Entries: []models.TransactionEntry{
			{AccountID: cashID, Amount: 5, Type: models.Debit},
		},
	}
	var verr *ledger.ValidationError
	if _, err := svc.Update(ctx, models.DefaultBookID, txn.ID, bad); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	good := balancedDraft(cashID, salesID, 85)
	good.Description = "Corrected sale"
	updated, err := svc.Update(ctx, models.DefaultBookID, txn.ID, good)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Description != "Corrected sale" {
		t.Errorf("description = %q", updated.Description)
	}
	if updated.CreatedAt != txn.CreatedAt {
		t.Errorf("created-at changed on update: %d != %d", updated.CreatedAt, txn.CreatedAt)
	}
}

func TestDeleteTransactionRecycles(t *testing.T) {
	env := newTestEnv(t)
	cashID, salesID := env.seedAccounts(t)
	svc := NewTransactionService(env.store, env.bin)
	ctx := context.Background()

	txn, err := svc.Create(ctx, models.DefaultBookID, balancedDraft(cashID, salesID, 70))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := svc.Delete(ctx, models.DefaultBookID, txn.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := env.store.GetTransaction(ctx, models.DefaultBookID, txn.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected transaction gone, got %v", err)
	}

	items, err := env.bin.List(models.DefaultBookID)
	if err != nil {
		t.Fatalf("bin List failed: %v", err)
	}
	if len(items) != 1 || items[0].Kind != models.RecycledTransaction || items[0].OriginalID != txn.ID {
		t.Errorf("bin items = %+v, want the deleted transaction", items)
	}
}

func TestSetHighlight(t *testing.T) {
	env := newTestEnv(t)
	cashID, salesID := env.seedAccounts(t)
	svc := NewTransactionService(env.store, env.bin)
	ctx := context.Background()

	txn, err := svc.Create(ctx, models.DefaultBookID, balancedDraft(cashID, salesID, 70))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.SetHighlight(ctx, models.DefaultBookID, txn.ID, "purple"); err == nil {
		t.Error("expected unknown color to be rejected")
	}

	if err := svc.SetHighlight(ctx, models.DefaultBookID, txn.ID, models.HighlightGreen); err != nil {
		t.Fatalf("SetHighlight failed: %v", err)
	}
	got, err := env.store.GetTransaction(ctx, models.DefaultBookID, txn.ID)
	if err != nil {
		t.Fatalf("GetTransaction failed: %v", err)
	}
	if got.Highlight != models.HighlightGreen {
		t.Errorf("highlight = %q, want green", got.Highlight)
	}

	// Clearing uses the empty color.
	if err := svc.SetHighlight(ctx, models.DefaultBookID, txn.ID, ""); err != nil {
		t.Fatalf("clear highlight failed: %v", err)
	}
	got, err = env.store.GetTransaction(ctx, models.DefaultBookID, txn.ID)
	if err != nil {
		t.Fatalf("GetTransaction failed: %v", err)
	}
	if got.Highlight != "" {
		t.Errorf("highlight = %q, want cleared", got.Highlight)
	}
}
