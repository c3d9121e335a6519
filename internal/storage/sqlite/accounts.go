package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
)

// ListAccounts returns the book's accounts in name order.
func (s *SQLiteStore) ListAccounts(ctx context.Context, bookID string) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, book_id, category_id, name, type, opening_balance FROM accounts WHERE book_id = ? ORDER BY name",
		bookID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.BookID, &a.CategoryID, &a.Name, &a.Type, &a.OpeningBalance); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

// GetAccount retrieves one account within a book.
func (s *SQLiteStore) GetAccount(ctx context.Context, bookID, id string) (*models.Account, error) {
	a := &models.Account{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, book_id, category_id, name, type, opening_balance FROM accounts WHERE book_id = ? AND id = ?",
		bookID, id,
	).Scan(&a.ID, &a.BookID, &a.CategoryID, &a.Name, &a.Type, &a.OpeningBalance)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}

// CreateAccount persists a new account, assigning an id when absent.
func (s *SQLiteStore) CreateAccount(ctx context.Context, account *models.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO accounts (id, book_id, category_id, name, type, opening_balance) VALUES (?, ?, ?, ?, ?, ?)",
		account.ID, account.BookID, account.CategoryID, account.Name, account.Type, account.OpeningBalance,
	); err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// UpdateAccount replaces an account's mutable fields.
func (s *SQLiteStore) UpdateAccount(ctx context.Context, account *models.Account) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE accounts SET category_id = ?, name = ?, type = ?, opening_balance = ? WHERE book_id = ? AND id = ?",
		account.CategoryID, account.Name, account.Type, account.OpeningBalance, account.BookID, account.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account %s: %w", account.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteAccount removes an account. An account with posted entries is
// refused with ErrInUse; the check and the delete see the same state.
func (s *SQLiteStore) DeleteAccount(ctx context.Context, bookID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM entries WHERE account_id = ?", id,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check account entries: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("account %s has transactions: %w", id, storage.ErrInUse)
	}

	res, err := tx.ExecContext(ctx,
		"DELETE FROM accounts WHERE book_id = ? AND id = ?", bookID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account %s: %w", id, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
