package ledger

import (
	"sort"
	"time"

	"github.com/munimapp/munim/internal/models"
)

// Window is an optional [From, To] date range. A nil bound leaves that
// side open.
type Window struct {
	From *time.Time
	To   *time.Time
}

// ledgerRow pairs one transaction with its leg for the projected account.
type ledgerRow struct {
	tx    models.Transaction
	entry models.TransactionEntry
}

// Project computes the windowed ledger for one account: the opening
// balance accumulated from zero over everything strictly before the
// window, each in-window leg annotated with a running balance, and the
// closing balance after the last one.
//
// Rows are processed in chronological order regardless of the order
// transactions were supplied in; ties on the same date fall back to the
// store-assigned ordering key, then to input order. Entries dated after
// the window end are ignored entirely. Presentation reversal (most recent
// first) is the caller's business and never happens here.
func Project(accountID string, side models.NormalSide, transactions []models.Transaction, w Window) models.AccountLedger {
	var rows []ledgerRow
	for _, tx := range transactions {
		for _, e := range tx.Entries {
			if e.AccountID == accountID {
				rows = append(rows, ledgerRow{tx: tx, entry: e})
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].tx.Date.Equal(rows[j].tx.Date) {
			return rows[i].tx.Date.Before(rows[j].tx.Date)
		}
		return rows[i].tx.CreatedAt < rows[j].tx.CreatedAt
	})

	out := models.AccountLedger{Entries: []models.LedgerEntry{}}
	running := 0.0
	for _, row := range rows {
		if w.To != nil && row.tx.Date.After(*w.To) {
			continue
		}

		var debit, credit float64
		switch row.entry.Type {
		case models.Debit:
			debit = row.entry.Amount
		case models.Credit:
			credit = row.entry.Amount
		}

		delta := debit - credit
		if side != models.DebitNormal {
			delta = credit - debit
		}

		if w.From != nil && row.tx.Date.Before(*w.From) {
			// Strictly before the window: folds into the opening balance.
			out.Opening += delta
			continue
		}

		running += delta
		desc := row.tx.Description
		if row.entry.Description != "" {
			desc = row.entry.Description
		}
		out.Entries = append(out.Entries, models.LedgerEntry{
			TransactionID: row.tx.ID,
			Date:          row.tx.Date,
			Description:   desc,
			Debit:         debit,
			Credit:        credit,
			Balance:       out.Opening + running,
		})
	}

	out.Closing = out.Opening + running
	return out
}
