package ledger

import (
	"fmt"

	"github.com/munimapp/munim/internal/models"
)

// Rule identifies which validation rule a transaction draft broke.
type Rule string

const (
	// RuleMinEntries: a transaction needs at least two legs.
	RuleMinEntries Rule = "min_entries"
	// RulePositiveAmount: every leg's amount must be greater than zero.
	RulePositiveAmount Rule = "positive_amount"
	// RuleBalanced: debit and credit totals must agree within Epsilon.
	RuleBalanced Rule = "balanced"
)

// ValidationError is the one error class the ledger core raises itself. It
// is produced synchronously, before any persistence is attempted.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateDraft checks a proposed transaction against the double-entry
// rules. It is deterministic and side-effect-free, so a caller may safely
// re-run it when retrying.
func ValidateDraft(draft models.TransactionDraft) error {
	if len(draft.Entries) < 2 {
		return &ValidationError{
			Rule:    RuleMinEntries,
			Message: "a transaction needs at least two entries",
		}
	}
	for i, e := range draft.Entries {
		if e.Amount <= 0 {
			return &ValidationError{
				Rule:    RulePositiveAmount,
				Message: fmt.Sprintf("entry %d: amount must be positive", i+1),
			}
		}
	}
	if !Balanced(draft.Entries) {
		debit := SumByType(draft.Entries, models.Debit)
		credit := SumByType(draft.Entries, models.Credit)
		return &ValidationError{
			Rule:    RuleBalanced,
			Message: fmt.Sprintf("debits (%.2f) must equal credits (%.2f)", debit, credit),
		}
	}
	return nil
}
