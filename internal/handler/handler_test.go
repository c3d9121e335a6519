package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/service"
	"github.com/munimapp/munim/internal/storage/recycle"
	"github.com/munimapp/munim/internal/storage/sqlite"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	store, err := sqlite.New(filepath.Join(dir, "ledger.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	bin, err := recycle.Open(filepath.Join(dir, "bin.db"), 0)
	if err != nil {
		t.Fatalf("Failed to open bin: %v", err)
	}
	t.Cleanup(func() { bin.Close() })

	return NewRouter(Services{
		Books:        service.NewBookService(store, bin),
		Chart:        service.NewChartService(store, bin),
		Transactions: service.NewTransactionService(store, bin),
		Ledgers:      service.NewLedgerService(store),
		Bin:          service.NewBinService(store, bin),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestBooksEndToEnd(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/books", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	books := decode[[]models.Book](t, w)
	if len(books) != 1 || books[0].ID != models.DefaultBookID {
		t.Fatalf("books = %+v, want only the default book", books)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/books", gin.H{"name": "Shop"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	created := decode[models.Book](t, w)

	// Case-insensitive duplicate is a conflict.
	w = doJSON(t, r, http.MethodPost, "/api/v1/books", gin.H{"name": "SHOP"})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate status = %d, want 409", w.Code)
	}

	// The default book refuses deletion.
	w = doJSON(t, r, http.MethodDelete, "/api/v1/books/"+models.DefaultBookID, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("default delete status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/books/"+created.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", w.Code)
	}
}

func TestTransactionLifecycle(t *testing.T) {
	r := newTestRouter(t)
	base := "/api/v1/books/" + models.DefaultBookID

	w := doJSON(t, r, http.MethodPost, base+"/categories", gin.H{"name": "Cash"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category status = %d: %s", w.Code, w.Body.String())
	}
	category := decode[models.Category](t, w)
	if category.NormalSide != models.DebitNormal {
		t.Errorf("category side = %q, want debit from the name heuristic", category.NormalSide)
	}

	w = doJSON(t, r, http.MethodPost, base+"/accounts", gin.H{"categoryId": category.ID, "name": "Till", "type": "asset"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create till status = %d: %s", w.Code, w.Body.String())
	}
	till := decode[models.Account](t, w)

	w = doJSON(t, r, http.MethodPost, base+"/accounts", gin.H{"categoryId": category.ID, "name": "Sales", "type": "revenue"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create sales status = %d", w.Code)
	}
	sales := decode[models.Account](t, w)

	// Unbalanced is rejected with 400.
	w = doJSON(t, r, http.MethodPost, base+"/transactions", gin.H{
		"date": "2025-03-10T00:00:00Z",
		"entries": []gin.H{
			{"accountId": till.ID, "amount": 100, "type": "debit"},
			{"accountId": sales.ID, "amount": 30, "type": "credit"},
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unbalanced status = %d, want 400: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, base+"/transactions", gin.H{
		"date":        "2025-03-10T00:00:00Z",
		"description": "Morning sales",
		"entries": []gin.H{
			{"accountId": till.ID, "amount": 70, "type": "debit"},
			{"accountId": sales.ID, "amount": 70, "type": "credit"},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create transaction status = %d: %s", w.Code, w.Body.String())
	}
	txn := decode[models.Transaction](t, w)

	w = doJSON(t, r, http.MethodPut, base+"/transactions/"+txn.ID+"/highlight", gin.H{"color": "green"})
	if w.Code != http.StatusNoContent {
		t.Errorf("highlight status = %d, want 204: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("%s/accounts/%s/ledger?from=2025-03-01&to=2025-03-31", base, till.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ledger status = %d: %s", w.Code, w.Body.String())
	}
	view := decode[models.AccountLedger](t, w)
	if view.Opening != 0 || view.Closing != 70 {
		t.Errorf("opening/closing = %v/%v, want 0/70", view.Opening, view.Closing)
	}
	if len(view.Entries) != 1 || view.Entries[0].Balance != 70 {
		t.Errorf("entries = %+v", view.Entries)
	}

	// Delete, then restore from the bin.
	w = doJSON(t, r, http.MethodDelete, base+"/transactions/"+txn.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, base+"/bin", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("bin status = %d", w.Code)
	}
	items := decode[[]models.RecycledItem](t, w)
	if len(items) != 1 || items[0].OriginalID != txn.ID {
		t.Fatalf("bin items = %+v", items)
	}
	w = doJSON(t, r, http.MethodPost, base+"/bin/"+txn.ID+"/restore", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("restore status = %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodGet, base+"/transactions", nil)
	listed := decode[[]models.Transaction](t, w)
	if len(listed) != 1 || listed[0].ID != txn.ID {
		t.Errorf("transactions after restore = %+v", listed)
	}
}

func TestLedgerEntriesMostRecentFirst(t *testing.T) {
	r := newTestRouter(t)
	base := "/api/v1/books/" + models.DefaultBookID

	w := doJSON(t, r, http.MethodPost, base+"/categories", gin.H{"name": "Cash"})
	category := decode[models.Category](t, w)
	w = doJSON(t, r, http.MethodPost, base+"/accounts", gin.H{"categoryId": category.ID, "name": "Till", "type": "asset"})
	till := decode[models.Account](t, w)
	w = doJSON(t, r, http.MethodPost, base+"/accounts", gin.H{"categoryId": category.ID, "name": "Sales", "type": "revenue"})
	sales := decode[models.Account](t, w)

	for _, day := range []string{"2025-01-10", "2025-02-10"} {
		w = doJSON(t, r, http.MethodPost, base+"/transactions", gin.H{
			"date": day + "T00:00:00Z",
			"entries": []gin.H{
				{"accountId": till.ID, "amount": 50, "type": "debit"},
				{"accountId": sales.ID, "amount": 50, "type": "credit"},
			},
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create on %s status = %d", day, w.Code)
		}
	}

	w = doJSON(t, r, http.MethodGet, base+"/accounts/"+till.ID+"/ledger", nil)
	view := decode[models.AccountLedger](t, w)
	if len(view.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(view.Entries))
	}
	// Most recent first, but balances still reflect chronological order.
	if !view.Entries[0].Date.After(view.Entries[1].Date) {
		t.Error("expected most recent entry first")
	}
	if view.Entries[0].Balance != 100 || view.Entries[1].Balance != 50 {
		t.Errorf("balances = %v, %v, want 100, 50", view.Entries[0].Balance, view.Entries[1].Balance)
	}
}

func TestUnknownBookIs404(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/books/book_missing/transactions", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
