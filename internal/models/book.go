package models

// DefaultBookID is the id of the book seeded on first startup.
// The default book always exists and cannot be deleted.
const DefaultBookID = "book_default"

// Book is a named ledger namespace. Categories, accounts and transactions
// each belong to exactly one book.
type Book struct {
	// ID is the unique identifier for the book (UUID format, except the
	// seeded default book).
	ID string `json:"id"`

	// Name is the display name of the book (e.g., "Shop", "Personal").
	Name string `json:"name"`
}
