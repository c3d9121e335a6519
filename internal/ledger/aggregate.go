package ledger

import "github.com/munimapp/munim/internal/models"

// AccountsWithBalances computes the all-time balance of every account over
// the book's full transaction set, each on its own resolved normal side.
func AccountsWithBalances(accounts []models.Account, categories []models.Category, transactions []models.Transaction) []models.AccountWithBalance {
	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	entries := flatten(transactions)

	out := make([]models.AccountWithBalance, len(accounts))
	for i, acc := range accounts {
		side := NormalSideFor(acc, byID[acc.CategoryID])
		out[i] = models.AccountWithBalance{
			Account: acc,
			Balance: AccountBalance(entries, acc.ID, side),
		}
	}
	return out
}

// Totals rolls account balances up into the book-wide dashboard figures.
//
// This is the one aggregation rule in the system: net account balances
// split by sign. Non-negative balances sum into the debit total; negative
// balances contribute their absolute value to the credit total. It sums
// derived balances, not raw transaction flows.
func Totals(accounts []models.AccountWithBalance) models.Totals {
	var t models.Totals
	for _, acc := range accounts {
		if acc.Balance >= 0 {
			t.Debit += acc.Balance
		} else {
			t.Credit += -acc.Balance
		}
	}
	return t
}

// CategoriesWithDetails builds the chart-of-accounts view: every category
// with its member accounts (balance attached) and their summed balance.
// Within a category every account uses the category's side, computed once.
func CategoriesWithDetails(categories []models.Category, accounts []models.Account, transactions []models.Transaction) []models.CategoryWithDetails {
	entries := flatten(transactions)

	out := make([]models.CategoryWithDetails, len(categories))
	for i, cat := range categories {
		side := cat.NormalSide
		if side == "" {
			side = SuggestNormalSide(cat.Name)
		}

		detail := models.CategoryWithDetails{Category: cat, Accounts: []models.AccountWithBalance{}}
		for _, acc := range accounts {
			if acc.CategoryID != cat.ID {
				continue
			}
			bal := AccountBalance(entries, acc.ID, side)
			detail.Accounts = append(detail.Accounts, models.AccountWithBalance{Account: acc, Balance: bal})
			detail.TotalBalance += bal
		}
		out[i] = detail
	}
	return out
}
