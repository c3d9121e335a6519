package ledger

import (
	"math"
	"testing"

	"github.com/munimapp/munim/internal/models"
)

func TestSumByType(t *testing.T) {
	entries := []models.TransactionEntry{
		{AccountID: "a", Amount: 100, Type: models.Debit},
		{AccountID: "b", Amount: 60, Type: models.Credit},
		{AccountID: "a", Amount: 40, Type: models.Credit},
	}

	if got := SumByType(entries, models.Debit); got != 100 {
		t.Errorf("debit sum = %v, want 100", got)
	}
	if got := SumByType(entries, models.Credit); got != 100 {
		t.Errorf("credit sum = %v, want 100", got)
	}
	if got := SumByType(nil, models.Debit); got != 0 {
		t.Errorf("empty sum = %v, want 0", got)
	}
}

func TestSuggestNormalSide(t *testing.T) {
	tests := []struct {
		name string
		want models.NormalSide
	}{
		{"Cash", models.DebitNormal},
		{"Fixed Assets", models.DebitNormal},
		{"Office Expenses", models.DebitNormal},
		{"Parties", models.DebitNormal},
		{"Gold and Silver", models.DebitNormal},
		{"VC Fund", models.DebitNormal},
		{"Other Items", models.DebitNormal},
		{"RR", models.DebitNormal},
		{"CASH IN HAND", models.DebitNormal}, // case-insensitive
		{"Capital", models.CreditNormal},
		{"Revenue", models.CreditNormal},
		{"Loans", models.CreditNormal},
		{"", models.CreditNormal},
	}
	for _, tt := range tests {
		if got := SuggestNormalSide(tt.name); got != tt.want {
			t.Errorf("SuggestNormalSide(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNormalSideFor(t *testing.T) {
	creditCat := models.Category{ID: "c1", Name: "Loans", NormalSide: models.CreditNormal}
	debitCat := models.Category{ID: "c2", Name: "Cash", NormalSide: models.DebitNormal}

	tests := []struct {
		name     string
		account  models.Account
		category models.Category
		want     models.NormalSide
	}{
		{"explicit asset wins over credit category", models.Account{Type: models.AccountAsset}, creditCat, models.DebitNormal},
		{"explicit expense wins", models.Account{Type: models.AccountExpense}, creditCat, models.DebitNormal},
		{"explicit liability wins over debit category", models.Account{Type: models.AccountLiability}, debitCat, models.CreditNormal},
		{"explicit revenue wins", models.Account{Type: models.AccountRevenue}, debitCat, models.CreditNormal},
		{"no type falls back to stored side", models.Account{}, creditCat, models.CreditNormal},
		{"no type, no stored side, keyword fallback", models.Account{}, models.Category{Name: "Gold and Silver"}, models.DebitNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalSideFor(tt.account, tt.category); got != tt.want {
				t.Errorf("NormalSideFor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccountBalanceSignConvention(t *testing.T) {
	entries := []models.TransactionEntry{
		{AccountID: "acc", Amount: 100, Type: models.Debit},
		{AccountID: "acc", Amount: 30, Type: models.Credit},
		{AccountID: "noise", Amount: 999, Type: models.Debit},
	}

	if got := AccountBalance(entries, "acc", models.DebitNormal); math.Abs(got-70) > 1e-9 {
		t.Errorf("debit-normal balance = %v, want 70", got)
	}
	if got := AccountBalance(entries, "acc", models.CreditNormal); math.Abs(got+70) > 1e-9 {
		t.Errorf("credit-normal balance = %v, want -70", got)
	}
	if got := AccountBalance(nil, "acc", models.DebitNormal); got != 0 {
		t.Errorf("empty balance = %v, want 0", got)
	}
}

func TestAccountBalanceIdempotent(t *testing.T) {
	entries := []models.TransactionEntry{
		{AccountID: "acc", Amount: 12.34, Type: models.Debit},
		{AccountID: "acc", Amount: 5.55, Type: models.Credit},
	}
	first := AccountBalance(entries, "acc", models.DebitNormal)
	second := AccountBalance(entries, "acc", models.DebitNormal)
	if first != second {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}

func TestCategoryBalanceMatchesAccountSum(t *testing.T) {
	cat := models.Category{ID: "cat", Name: "Parties", NormalSide: models.DebitNormal}
	accounts := []models.Account{
		{ID: "a1", CategoryID: "cat"},
		{ID: "a2", CategoryID: "cat"},
		{ID: "a3", CategoryID: "elsewhere"},
	}
	entries := []models.TransactionEntry{
		{AccountID: "a1", Amount: 500, Type: models.Debit},
		{AccountID: "a2", Amount: 200, Type: models.Credit},
		{AccountID: "a3", Amount: 777, Type: models.Debit},
	}

	want := AccountBalance(entries, "a1", cat.NormalSide) + AccountBalance(entries, "a2", cat.NormalSide)
	if got := CategoryBalance(entries, cat, accounts); math.Abs(got-want) > 1e-9 {
		t.Errorf("CategoryBalance = %v, want %v", got, want)
	}
	if got := CategoryBalance(entries, cat, accounts); math.Abs(got-300) > 1e-9 {
		t.Errorf("CategoryBalance = %v, want 300", got)
	}
}
