package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
	"github.com/munimapp/munim/internal/storage/recycle"
)

// BinService exposes the recycle bin: listing soft-deleted items and
// restoring them back into the live collections.
type BinService struct {
	store storage.Store
	bin   *recycle.Bin
}

// NewBinService creates a new BinService.
func NewBinService(store storage.Store, bin *recycle.Bin) *BinService {
	return &BinService{store: store, bin: bin}
}

// List returns the book's recycled items still inside the retention
// window, most recently deleted first. The book itself may be deleted:
// its recycled cascade stays listable under its id so a restore can find
// the book record again. The bin bucket scopes the query on its own.
func (s *BinService) List(ctx context.Context, bookID string) ([]models.RecycledItem, error) {
	items, err := s.bin.List(bookID)
	if err != nil {
		slog.Error("Bin list failed", "book_id", bookID, "error", err)
		return nil, err
	}
	return items, nil
}

// Restore takes an item out of the bin and recreates it with its
// original id. If recreating fails the item goes back in the bin so
// nothing is lost.
func (s *BinService) Restore(ctx context.Context, bookID, originalID string) (*models.RecycledItem, error) {
	item, err := s.bin.Take(bookID, originalID)
	if err != nil {
		return nil, err
	}

	if err := s.recreate(ctx, item); err != nil {
		if putErr := s.bin.Put(*item); putErr != nil {
			slog.Error("Failed to return item to bin after restore failure",
				"id", originalID, "restore_error", err, "bin_error", putErr)
		}
		slog.Warn("Restore failed", "book_id", bookID, "id", originalID, "kind", item.Kind, "error", err)
		return nil, err
	}

	slog.Info("Item restored", "book_id", bookID, "id", originalID, "kind", item.Kind)
	return item, nil
}

func (s *BinService) recreate(ctx context.Context, item *models.RecycledItem) error {
	switch item.Kind {
	case models.RecycledBook:
		var book models.Book
		if err := json.Unmarshal(item.Payload, &book); err != nil {
			return fmt.Errorf("failed to decode recycled book: %w", err)
		}
		return s.store.CreateBook(ctx, &book)

	case models.RecycledCategory:
		var category models.Category
		if err := json.Unmarshal(item.Payload, &category); err != nil {
			return fmt.Errorf("failed to decode recycled category: %w", err)
		}
		return s.store.CreateCategory(ctx, &category)

	case models.RecycledAccount:
		var account models.Account
		if err := json.Unmarshal(item.Payload, &account); err != nil {
			return fmt.Errorf("failed to decode recycled account: %w", err)
		}
		return s.store.CreateAccount(ctx, &account)

	case models.RecycledTransaction:
		var txn models.Transaction
		if err := json.Unmarshal(item.Payload, &txn); err != nil {
			return fmt.Errorf("failed to decode recycled transaction: %w", err)
		}
		if err := s.store.CreateTransaction(ctx, &txn); err != nil {
			return err
		}
		// The highlight row was cascade-deleted with the original; put it
		// back from the payload.
		if txn.Highlight != "" {
			if err := s.store.SetHighlight(ctx, txn.BookID, txn.ID, txn.Highlight); err != nil {
				slog.Warn("Failed to restore highlight", "transaction_id", txn.ID, "error", err)
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown recycled kind %q", item.Kind)
	}
}
