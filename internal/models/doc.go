// Package models defines the core domain models for munim.
//
// # Models
//
//   - Book: a named ledger namespace; every other record belongs to one book
//   - Category: a named grouping of accounts with a stored normal-balance side
//   - Account: a ledger account inside a category
//   - Transaction: an atomic financial event with balanced debit/credit entries
//   - TransactionEntry: one leg of a transaction
//   - RecycledItem: a soft-deleted record held in the recycle bin
//
// # Design Principles
//
//  1. **Explicit book scoping**: every operation takes a book id; there is no
//     ambient "active book" on the server side.
//  2. **Stored normal side**: a category's debit/credit-normal side is decided
//     once at creation and persisted, never re-derived from its name.
//  3. **Avoid circular references**: relationships use id strings, not pointers.
//  4. **Immutable transactions**: a persisted transaction only changes through
//     full re-validated replacement; the highlight annotation lives outside it.
package models
