package models

// AccountType classifies an account per accounting convention.
// Assets and expenses increase with debits; liabilities, equity and
// revenue increase with credits.
type AccountType string

const (
	AccountAsset     AccountType = "asset"
	AccountLiability AccountType = "liability"
	AccountEquity    AccountType = "equity"
	AccountRevenue   AccountType = "revenue"
	AccountExpense   AccountType = "expense"
)

// Valid reports whether t is one of the five known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountAsset, AccountLiability, AccountEquity, AccountRevenue, AccountExpense:
		return true
	}
	return false
}

// Account is a ledger account. The Type field is optional: older books
// predate the type taxonomy, in which case the owning category's stored
// normal side decides the sign convention.
type Account struct {
	// ID is the unique identifier for the account (UUID format).
	ID string `json:"id"`

	// BookID is the owning book.
	BookID string `json:"bookId"`

	// CategoryID is the owning category.
	CategoryID string `json:"categoryId"`

	// Name is the display name of the account.
	Name string `json:"name"`

	// Type is the optional explicit account type; empty when unknown.
	Type AccountType `json:"type,omitempty"`

	// OpeningBalance is carried from some schema revisions. It is stored
	// and returned as-is; ledgers always accumulate from zero.
	OpeningBalance float64 `json:"openingBalance,omitempty"`
}
