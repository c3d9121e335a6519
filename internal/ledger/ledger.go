// Package ledger holds the double-entry arithmetic: debit/credit sums,
// normal-balance sign conventions, windowed balance projection, chart
// rollups and transaction validation. Everything here is a pure function
// over already-loaded collections; persistence lives elsewhere.
package ledger

import (
	"strings"

	"github.com/munimapp/munim/internal/models"
)

// Epsilon is the tolerance for all balanced-ness comparisons. Amounts are
// floating point, so sums are never compared for exact equality.
const Epsilon = 0.01

// debitKeywords mark category names whose accounts normally carry a debit
// balance. Matching is by substring, case-insensitive. Any name that
// matches none of these is treated as credit-normal.
var debitKeywords = []string{
	"asset",
	"expense",
	"parties",
	"cash",
	"gold and silver",
	"vc",
	"other",
	"rr",
}

// SuggestNormalSide infers a normal-balance side from a category name.
// It is a creation-time default only; the chosen side is stored on the
// category and never re-derived afterwards.
func SuggestNormalSide(categoryName string) models.NormalSide {
	lower := strings.ToLower(categoryName)
	for _, kw := range debitKeywords {
		if strings.Contains(lower, kw) {
			return models.DebitNormal
		}
	}
	return models.CreditNormal
}

// NormalSideFor resolves the sign convention for an account. An explicit
// account type wins; otherwise the owning category's stored side applies.
func NormalSideFor(account models.Account, category models.Category) models.NormalSide {
	switch account.Type {
	case models.AccountAsset, models.AccountExpense:
		return models.DebitNormal
	case models.AccountLiability, models.AccountEquity, models.AccountRevenue:
		return models.CreditNormal
	}
	if category.NormalSide != "" {
		return category.NormalSide
	}
	return SuggestNormalSide(category.Name)
}

// SumByType returns the sum of amounts for entries of the given type.
// An empty input sums to zero.
func SumByType(entries []models.TransactionEntry, t models.EntryType) float64 {
	var sum float64
	for _, e := range entries {
		if e.Type == t {
			sum += e.Amount
		}
	}
	return sum
}

// AccountBalance nets the entries posted to the given account, signed per
// the normal side: debit−credit when debit-normal, credit−debit otherwise.
// A positive result sits on the expected side; a negative result means the
// account has flipped to the opposite side.
func AccountBalance(entries []models.TransactionEntry, accountID string, side models.NormalSide) float64 {
	var debit, credit float64
	for _, e := range entries {
		if e.AccountID != accountID {
			continue
		}
		switch e.Type {
		case models.Debit:
			debit += e.Amount
		case models.Credit:
			credit += e.Amount
		}
	}
	if side == models.DebitNormal {
		return debit - credit
	}
	return credit - debit
}

// CategoryBalance sums AccountBalance over the category's accounts. One
// side decision applies to every member: categories are assumed internally
// homogeneous in normal-balance side.
func CategoryBalance(entries []models.TransactionEntry, category models.Category, accounts []models.Account) float64 {
	side := category.NormalSide
	if side == "" {
		side = SuggestNormalSide(category.Name)
	}
	var total float64
	for _, acc := range accounts {
		if acc.CategoryID != category.ID {
			continue
		}
		total += AccountBalance(entries, acc.ID, side)
	}
	return total
}

// Balanced reports whether debit and credit totals agree within Epsilon.
func Balanced(entries []models.TransactionEntry) bool {
	diff := SumByType(entries, models.Debit) - SumByType(entries, models.Credit)
	if diff < 0 {
		diff = -diff
	}
	return diff < Epsilon
}

// flatten collects every entry of every transaction into one slice.
func flatten(transactions []models.Transaction) []models.TransactionEntry {
	var entries []models.TransactionEntry
	for _, tx := range transactions {
		entries = append(entries, tx.Entries...)
	}
	return entries
}
