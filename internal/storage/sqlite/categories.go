package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
)

// ListCategories returns the book's categories in name order.
func (s *SQLiteStore) ListCategories(ctx context.Context, bookID string) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, book_id, name, normal_side FROM categories WHERE book_id = ? ORDER BY name",
		bookID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.BookID, &c.Name, &c.NormalSide); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// GetCategory retrieves one category within a book.
func (s *SQLiteStore) GetCategory(ctx context.Context, bookID, id string) (*models.Category, error) {
	c := &models.Category{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, book_id, name, normal_side FROM categories WHERE book_id = ? AND id = ?",
		bookID, id,
	).Scan(&c.ID, &c.BookID, &c.Name, &c.NormalSide)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

// CreateCategory persists a new category. Names are unique within the
// book, case-insensitively; the check and the insert share one database
// transaction so concurrent creates cannot both pass.
func (s *SQLiteStore) CreateCategory(ctx context.Context, category *models.Category) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM categories WHERE book_id = ? AND LOWER(name) = LOWER(?)",
		category.BookID, category.Name,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("category %q: %w", category.Name, storage.ErrDuplicateName)
	}

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO categories (id, book_id, name, normal_side) VALUES (?, ?, ?, ?)",
		category.ID, category.BookID, category.Name, category.NormalSide,
	); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteCategory removes an empty category. A category that still has
// accounts is refused with ErrInUse.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, bookID, id string) error {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM accounts WHERE book_id = ? AND category_id = ?",
		bookID, id,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check category accounts: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("category %s has accounts: %w", id, storage.ErrInUse)
	}

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM categories WHERE book_id = ? AND id = ?", bookID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
