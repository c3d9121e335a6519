package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/munimapp/munim/internal/ledger"
	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
	"github.com/munimapp/munim/internal/storage/recycle"
)

// TransactionService gatekeeps transaction writes: every create and
// update passes the double-entry validator before anything is persisted.
type TransactionService struct {
	store storage.Store
	bin   *recycle.Bin
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store storage.Store, bin *recycle.Bin) *TransactionService {
	return &TransactionService{store: store, bin: bin}
}

// List returns the book's transactions, most recent first.
func (s *TransactionService) List(ctx context.Context, bookID string) ([]models.Transaction, error) {
	if _, err := s.store.GetBook(ctx, bookID); err != nil {
		return nil, err
	}
	transactions, err := s.store.ListTransactions(ctx, bookID)
	if err != nil {
		slog.Error("ListTransactions failed", "book_id", bookID, "error", err)
		return nil, err
	}
	return transactions, nil
}

// Create validates a draft and persists it. On validation failure nothing
// is written.
func (s *TransactionService) Create(ctx context.Context, bookID string, draft models.TransactionDraft) (*models.Transaction, error) {
	if _, err := s.store.GetBook(ctx, bookID); err != nil {
		return nil, err
	}
	if err := ledger.ValidateDraft(draft); err != nil {
		slog.Info("Transaction rejected", "book_id", bookID, "error", err)
		return nil, err
	}

	txn := &models.Transaction{
		BookID:      bookID,
		Date:        draft.Date,
		Description: draft.Description,
		Entries:     draft.Entries,
	}
	if err := s.store.CreateTransaction(ctx, txn); err != nil {
		slog.Error("CreateTransaction failed", "book_id", bookID, "error", err)
		return nil, err
	}
	slog.Info("Transaction created", "book_id", bookID, "transaction_id", txn.ID, "entries", len(txn.Entries))
	return txn, nil
}

// Update replaces a transaction wholesale, re-validated as if new. The
// highlight annotation is untouched.
func (s *TransactionService) Update(ctx context.Context, bookID, id string, draft models.TransactionDraft) (*models.Transaction, error) {
	existing, err := s.store.GetTransaction(ctx, bookID, id)
	if err != nil {
		return nil, err
	}
	if err := ledger.ValidateDraft(draft); err != nil {
		slog.Info("Transaction update rejected", "book_id", bookID, "transaction_id", id, "error", err)
		return nil, err
	}

	txn := &models.Transaction{
		ID:          id,
		BookID:      bookID,
		Date:        draft.Date,
		Description: draft.Description,
		Entries:     draft.Entries,
		CreatedAt:   existing.CreatedAt,
	}
	if err := s.store.UpdateTransaction(ctx, txn); err != nil {
		slog.Error("UpdateTransaction failed", "transaction_id", id, "error", err)
		return nil, err
	}
	slog.Info("Transaction updated", "book_id", bookID, "transaction_id", id)
	return s.store.GetTransaction(ctx, bookID, id)
}

// Delete soft-deletes a transaction into the recycle bin.
func (s *TransactionService) Delete(ctx context.Context, bookID, id string) error {
	txn, err := s.store.GetTransaction(ctx, bookID, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteTransaction(ctx, bookID, id); err != nil {
		slog.Error("DeleteTransaction failed", "transaction_id", id, "error", err)
		return err
	}
	if err := s.bin.Recycle(models.RecycledTransaction, bookID, id, txn); err != nil {
		slog.Warn("Failed to recycle transaction", "transaction_id", id, "error", err)
	}
	slog.Info("Transaction deleted", "book_id", bookID, "transaction_id", id)
	return nil
}

// SetHighlight updates the visual marker on a transaction. This is the
// one mutable field on an otherwise-immutable record, and it deliberately
// bypasses transaction validation.
func (s *TransactionService) SetHighlight(ctx context.Context, bookID, id string, color models.Highlight) error {
	if color != "" && !color.Valid() {
		return fmt.Errorf("unknown highlight color %q", color)
	}
	if err := s.store.SetHighlight(ctx, bookID, id, color); err != nil {
		slog.Error("SetHighlight failed", "transaction_id", id, "error", err)
		return err
	}
	slog.Info("Highlight updated", "book_id", bookID, "transaction_id", id, "color", color)
	return nil
}
