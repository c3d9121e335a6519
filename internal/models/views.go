package models

import "time"

// LedgerEntry is one row of an account ledger: a single transaction leg
// annotated with the running balance after it.
type LedgerEntry struct {
	TransactionID string    `json:"transactionId"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	Debit         float64   `json:"debit"`
	Credit        float64   `json:"credit"`
	Balance       float64   `json:"balance"`
}

// AccountLedger is the windowed ledger view for one account. Entries are
// in chronological order; presentation layers may reverse them for display
// without touching the balances.
type AccountLedger struct {
	Opening float64       `json:"openingBalance"`
	Entries []LedgerEntry `json:"entries"`
	Closing float64       `json:"closingBalance"`
}

// AccountWithBalance is an account annotated with its all-time signed
// balance on its normal side.
type AccountWithBalance struct {
	Account
	Balance float64 `json:"balance"`
}

// CategoryWithDetails is a category with its member accounts and their
// summed balance.
type CategoryWithDetails struct {
	Category
	Accounts     []AccountWithBalance `json:"accounts"`
	TotalBalance float64              `json:"totalBalance"`
}

// Totals are the book-wide dashboard figures: net account balances split
// by sign, non-negative on the debit side and |negative| on the credit side.
type Totals struct {
	Debit  float64 `json:"debit"`
	Credit float64 `json:"credit"`
}
