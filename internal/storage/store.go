// Package storage defines the persistence contract the ledger core is
// written against. Implementations may be backed by SQLite, another
// database, or memory; the core never cares which.
package storage

import (
	"context"
	"errors"

	"github.com/munimapp/munim/internal/models"
)

var (
	// ErrNotFound is returned when an id does not exist in the book.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned on a case-insensitive name collision
	// within the relevant scope (book names globally, category names per
	// book).
	ErrDuplicateName = errors.New("name already exists")

	// ErrInUse is returned when deleting a record that other records still
	// reference: an account with posted entries, or a category with
	// accounts. The deletion is refused atomically.
	ErrInUse = errors.New("record is referenced and cannot be deleted")
)

// Store is the persistence collaborator for books, categories, accounts
// and transactions. All writes assign ids (UUID) when absent so that
// restores can carry their original ids back in.
type Store interface {
	// ListBooks returns every book, the seeded default book included.
	ListBooks(ctx context.Context) ([]models.Book, error)

	// GetBook retrieves a book by id.
	GetBook(ctx context.Context, id string) (*models.Book, error)

	// CreateBook persists a new book, populating ID when empty.
	CreateBook(ctx context.Context, book *models.Book) error

	// RenameBook changes a book's display name.
	RenameBook(ctx context.Context, id, name string) error

	// DeleteBook removes a book and, via cascading foreign keys, every
	// category, account and transaction it owns. Callers recycle the
	// contents first; the default-book guard lives in the service layer.
	DeleteBook(ctx context.Context, id string) error

	ListCategories(ctx context.Context, bookID string) ([]models.Category, error)
	GetCategory(ctx context.Context, bookID, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error

	// DeleteCategory refuses with ErrInUse while accounts reference it.
	DeleteCategory(ctx context.Context, bookID, id string) error

	ListAccounts(ctx context.Context, bookID string) ([]models.Account, error)
	GetAccount(ctx context.Context, bookID, id string) (*models.Account, error)
	CreateAccount(ctx context.Context, account *models.Account) error
	UpdateAccount(ctx context.Context, account *models.Account) error

	// DeleteAccount refuses with ErrInUse while transaction entries
	// reference the account.
	DeleteAccount(ctx context.Context, bookID, id string) error

	// ListTransactions returns the book's transactions sorted by date
	// descending (ties broken by the created-at ordering key), highlight
	// annotations attached.
	ListTransactions(ctx context.Context, bookID string) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, bookID, id string) (*models.Transaction, error)

	// CreateTransaction persists an already-validated transaction,
	// populating ID and CreatedAt when empty.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// UpdateTransaction replaces date, description and entries wholesale.
	// The highlight annotation is untouched.
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error

	DeleteTransaction(ctx context.Context, bookID, id string) error

	// SetHighlight upserts the visual marker for a transaction; an empty
	// color clears it. This path never touches the transaction record.
	SetHighlight(ctx context.Context, bookID, transactionID string, color models.Highlight) error

	// Close releases any resources held by the store.
	Close() error
}
