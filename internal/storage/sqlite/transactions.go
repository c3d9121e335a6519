package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/storage"
)

// Dates are stored as RFC 3339 UTC strings so lexical order matches
// chronological order.
const dateFormat = time.RFC3339Nano

// ListTransactions returns the book's transactions sorted by date
// descending, created-at breaking ties, with entries and highlights
// attached.
func (s *SQLiteStore) ListTransactions(ctx context.Context, bookID string) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.book_id, t.date, t.description, t.created_at, COALESCE(h.color, '')
		FROM transactions t
		LEFT JOIN highlights h ON h.transaction_id = t.id
		WHERE t.book_id = ?
		ORDER BY t.date DESC, t.created_at DESC`,
		bookID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	for i := range transactions {
		entries, err := s.loadEntries(ctx, transactions[i].ID)
		if err != nil {
			return nil, err
		}
		transactions[i].Entries = entries
	}
	return transactions, nil
}

// GetTransaction retrieves one transaction with its entries.
func (s *SQLiteStore) GetTransaction(ctx context.Context, bookID, id string) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT t.id, t.book_id, t.date, t.description, t.created_at, COALESCE(h.color, '')
		FROM transactions t
		LEFT JOIN highlights h ON h.transaction_id = t.id
		WHERE t.book_id = ? AND t.id = ?`,
		bookID, id,
	)
	tx, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	entries, err := s.loadEntries(ctx, tx.ID)
	if err != nil {
		return nil, err
	}
	tx.Entries = entries
	return tx, nil
}

// CreateTransaction persists a validated transaction and its entries in
// one database transaction, assigning id and created-at when absent.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt == 0 {
		txn.CreatedAt = time.Now().Unix()
	}

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	_, err = dbTx.ExecContext(ctx,
		"INSERT INTO transactions (id, book_id, date, description, created_at) VALUES (?, ?, ?, ?, ?)",
		txn.ID, txn.BookID, txn.Date.UTC().Format(dateFormat), txn.Description, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := insertEntries(ctx, dbTx, txn.ID, txn.Entries); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateTransaction replaces date, description and entries wholesale.
// The highlight annotation rides along untouched.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, txn *models.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	res, err := dbTx.ExecContext(ctx,
		"UPDATE transactions SET date = ?, description = ? WHERE book_id = ? AND id = ?",
		txn.Date.UTC().Format(dateFormat), txn.Description, txn.BookID, txn.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", txn.ID, storage.ErrNotFound)
	}

	if _, err := dbTx.ExecContext(ctx,
		"DELETE FROM entries WHERE transaction_id = ?", txn.ID,
	); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	if err := insertEntries(ctx, dbTx, txn.ID, txn.Entries); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes a transaction; cascades take its entries and
// highlight.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, bookID, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM transactions WHERE book_id = ? AND id = ?", bookID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// SetHighlight upserts the visual marker; an empty color clears it.
func (s *SQLiteStore) SetHighlight(ctx context.Context, bookID, transactionID string, color models.Highlight) error {
	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM transactions WHERE book_id = ? AND id = ?",
		bookID, transactionID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check transaction: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("transaction %s: %w", transactionID, storage.ErrNotFound)
	}

	if color == "" {
		if _, err := s.db.ExecContext(ctx,
			"DELETE FROM highlights WHERE transaction_id = ?", transactionID,
		); err != nil {
			return fmt.Errorf("failed to clear highlight: %w", err)
		}
		return nil
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO highlights (transaction_id, color) VALUES (?, ?)
		ON CONFLICT(transaction_id) DO UPDATE SET color = excluded.color`,
		transactionID, color,
	); err != nil {
		return fmt.Errorf("failed to set highlight: %w", err)
	}
	return nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*models.Transaction, error) {
	tx := &models.Transaction{}
	var dateStr, color string
	if err := row.Scan(&tx.ID, &tx.BookID, &dateStr, &tx.Description, &tx.CreatedAt, &color); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	date, err := time.Parse(dateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction date %q: %w", dateStr, err)
	}
	tx.Date = date
	tx.Highlight = models.Highlight(color)
	return tx, nil
}

func (s *SQLiteStore) loadEntries(ctx context.Context, transactionID string) ([]models.TransactionEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT account_id, amount, type, description FROM entries WHERE transaction_id = ? ORDER BY position",
		transactionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	defer rows.Close()

	var entries []models.TransactionEntry
	for rows.Next() {
		var e models.TransactionEntry
		if err := rows.Scan(&e.AccountID, &e.Amount, &e.Type, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	return entries, nil
}

func insertEntries(ctx context.Context, dbTx *sql.Tx, transactionID string, entries []models.TransactionEntry) error {
	for i, e := range entries {
		if _, err := dbTx.ExecContext(ctx,
			"INSERT INTO entries (transaction_id, position, account_id, amount, type, description) VALUES (?, ?, ?, ?, ?, ?)",
			transactionID, i, e.AccountID, e.Amount, e.Type, e.Description,
		); err != nil {
			return fmt.Errorf("failed to insert entry: %w", err)
		}
	}
	return nil
}
