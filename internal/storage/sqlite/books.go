package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
)

// ListBooks returns every book in name order.
func (s *SQLiteStore) ListBooks(ctx context.Context) ([]models.Book, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM books ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}
	return books, nil
}

// GetBook retrieves a book by id.
func (s *SQLiteStore) GetBook(ctx context.Context, id string) (*models.Book, error) {
	b := &models.Book{}
	err := s.db.QueryRowContext(ctx, "SELECT id, name FROM books WHERE id = ?", id).
		Scan(&b.ID, &b.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("book %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return b, nil
}

// CreateBook persists a new book, assigning an id when absent. Book names
// are unique case-insensitively; the check and the insert share one
// database transaction so concurrent creates cannot both pass.
func (s *SQLiteStore) CreateBook(ctx context.Context, book *models.Book) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM books WHERE LOWER(name) = LOWER(?)", book.Name,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check book name: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("book %q: %w", book.Name, storage.ErrDuplicateName)
	}

	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO books (id, name) VALUES (?, ?)", book.ID, book.Name,
	); err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RenameBook changes a book's name.
func (s *SQLiteStore) RenameBook(ctx context.Context, id, name string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE books SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return fmt.Errorf("failed to rename book: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rename result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("book %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// DeleteBook removes a book; foreign-key cascades take its categories,
// accounts, transactions, entries and highlights along.
func (s *SQLiteStore) DeleteBook(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("book %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
