package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/service"
)

// LedgerHandler serves the derived read models: per-account ledgers and
// the book summary.
type LedgerHandler struct {
	ledgers *service.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgers *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgers: ledgers}
}

// parseDateParam accepts RFC 3339 timestamps or plain dates. A plain "to"
// date is pushed to the end of its day so the bound is inclusive.
func parseDateParam(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// AccountLedger returns the windowed ledger for one account. Entries
// come out most recent first; the running balances were computed in
// chronological order before the reversal.
func (h *LedgerHandler) AccountLedger(c *gin.Context) {
	from, err := parseDateParam(c.Query("from"), false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := parseDateParam(c.Query("to"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}

	view, err := h.ledgers.AccountLedger(c.Request.Context(), c.Param("bookId"), c.Param("id"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	// Presentation order only; balances stay as computed.
	reversed := make([]models.LedgerEntry, len(view.Entries))
	for i, e := range view.Entries {
		reversed[len(view.Entries)-1-i] = e
	}
	view.Entries = reversed

	c.JSON(http.StatusOK, view)
}

// Summary returns the dashboard view of the book.
func (h *LedgerHandler) Summary(c *gin.Context) {
	accounts, totals, err := h.ledgers.Summary(c.Request.Context(), c.Param("bookId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"accounts": accounts,
		"totals":   totals,
	})
}
