package models

import "time"

// EntryType marks one leg of a transaction as a debit or a credit.
type EntryType string

const (
	Debit  EntryType = "debit"
	Credit EntryType = "credit"
)

// Highlight is a purely visual marker on a transaction. It has no
// accounting meaning and is stored outside the transaction record.
type Highlight string

const (
	HighlightYellow Highlight = "yellow"
	HighlightBlue   Highlight = "blue"
	HighlightGreen  Highlight = "green"
)

// Valid reports whether h is one of the known highlight colors.
func (h Highlight) Valid() bool {
	switch h {
	case HighlightYellow, HighlightBlue, HighlightGreen:
		return true
	}
	return false
}

// TransactionEntry is one leg of a transaction.
type TransactionEntry struct {
	// AccountID is the account this leg posts against.
	AccountID string `json:"accountId"`

	// Amount is the posted amount; always positive.
	Amount float64 `json:"amount"`

	// Type is debit or credit.
	Type EntryType `json:"type"`

	// Description optionally overrides the transaction narration when this
	// leg is shown in an account ledger.
	Description string `json:"description,omitempty"`
}

// Transaction is an atomic financial event. Its entries always balance:
// the sum of debit amounts equals the sum of credit amounts.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	// BookID is the owning book.
	BookID string `json:"bookId"`

	// Date is when the event occurred.
	Date time.Time `json:"date"`

	// Description is the narration shown with the transaction.
	Description string `json:"description"`

	// Entries are the legs, at least two, in posting order.
	Entries []TransactionEntry `json:"entries"`

	// Highlight is the visual marker, empty when unset. Populated from the
	// highlight annotation table on read; never written through transaction
	// create/update.
	Highlight Highlight `json:"highlight,omitempty"`

	// CreatedAt is the Unix timestamp assigned at persistence time. It
	// breaks ordering ties between transactions on the same date.
	CreatedAt int64 `json:"createdAt"`
}

// TransactionDraft is a proposed transaction before validation and
// persistence. Ids and ordering keys are assigned by the store.
type TransactionDraft struct {
	Date        time.Time          `json:"date"`
	Description string             `json:"description"`
	Entries     []TransactionEntry `json:"entries"`
}
