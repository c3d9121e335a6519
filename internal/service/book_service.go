// Package service coordinates the ledger core, the persistence store and
// the recycle bin. Services validate first, persist second, and recycle
// before anything leaves a live collection.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
	"github.com/munimapp/munim/internal/storage/recycle"
)

// ErrDefaultBook is returned when a caller tries to delete the seeded
// default book.
var ErrDefaultBook = errors.New("the default book cannot be deleted")

// BookService manages books and the cascade of their contents into the
// recycle bin on deletion.
type BookService struct {
	store storage.Store
	bin   *recycle.Bin
}

// NewBookService creates a new BookService.
func NewBookService(store storage.Store, bin *recycle.Bin) *BookService {
	return &BookService{store: store, bin: bin}
}

// List returns every book.
func (s *BookService) List(ctx context.Context) ([]models.Book, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		slog.Error("ListBooks failed", "error", err)
		return nil, err
	}
	return books, nil
}

// Create adds a new book.
func (s *BookService) Create(ctx context.Context, name string) (*models.Book, error) {
	book := &models.Book{Name: name}
	if err := s.store.CreateBook(ctx, book); err != nil {
		slog.Error("CreateBook failed", "name", name, "error", err)
		return nil, err
	}
	slog.Info("Book created", "book_id", book.ID, "name", name)
	return book, nil
}

// Rename changes a book's display name.
func (s *BookService) Rename(ctx context.Context, id, name string) (*models.Book, error) {
	if err := s.store.RenameBook(ctx, id, name); err != nil {
		slog.Error("RenameBook failed", "book_id", id, "error", err)
		return nil, err
	}
	slog.Info("Book renamed", "book_id", id, "name", name)
	return s.store.GetBook(ctx, id)
}

// Delete soft-deletes a book: the book and everything it owns are moved
// to the recycle bin, then the live rows are removed. The default book is
// refused.
func (s *BookService) Delete(ctx context.Context, id string) error {
	if id == models.DefaultBookID {
		return ErrDefaultBook
	}

	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		return err
	}

	categories, err := s.store.ListCategories(ctx, id)
	if err != nil {
		return err
	}
	accounts, err := s.store.ListAccounts(ctx, id)
	if err != nil {
		return err
	}
	transactions, err := s.store.ListTransactions(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteBook(ctx, id); err != nil {
		slog.Error("DeleteBook failed", "book_id", id, "error", err)
		return err
	}

	// Live rows are gone; bin writes are best-effort from here.
	s.recycle(models.RecycledBook, id, book.ID, book)
	for _, c := range categories {
		s.recycle(models.RecycledCategory, id, c.ID, c)
	}
	for _, a := range accounts {
		s.recycle(models.RecycledAccount, id, a.ID, a)
	}
	for _, t := range transactions {
		s.recycle(models.RecycledTransaction, id, t.ID, t)
	}

	slog.Info("Book deleted",
		"book_id", id,
		"categories", len(categories),
		"accounts", len(accounts),
		"transactions", len(transactions),
	)
	return nil
}

func (s *BookService) recycle(kind models.RecycledKind, bookID, originalID string, entity any) {
	if err := s.bin.Recycle(kind, bookID, originalID, entity); err != nil {
		slog.Warn("Failed to recycle item", "kind", kind, "id", originalID, "error", err)
	}
}
