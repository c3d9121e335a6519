package models

// NormalSide is the side (debit or credit) on which a balance is
// conventionally positive.
type NormalSide string

const (
	// DebitNormal means the balance grows with debit postings (assets, expenses).
	DebitNormal NormalSide = "debit"
	// CreditNormal means the balance grows with credit postings
	// (liabilities, equity, revenue).
	CreditNormal NormalSide = "credit"
)

// Category groups accounts within a book (e.g., "Cash", "Parties").
type Category struct {
	// ID is the unique identifier for the category (UUID format).
	ID string `json:"id"`

	// BookID is the owning book.
	BookID string `json:"bookId"`

	// Name is the display name, unique within the book (case-insensitive).
	Name string `json:"name"`

	// NormalSide is the normal-balance side shared by the category's
	// accounts. It is decided once at creation time (defaulted from the
	// name keyword heuristic when not given) and persisted; renaming the
	// category never changes it.
	NormalSide NormalSide `json:"normalSide"`
}
