package finance

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an update or delete aimed at an id the ledger does not
// hold. The operation is a no-op on state; the error is the side channel.
var ErrNotFound = errors.New("not found")

// Op is a typed string identifying a ledger operation.
type Op string

const (
	OpAddAccount            Op = "add-account"
	OpUpdateAccount         Op = "update-account"
	OpDeleteAccount         Op = "delete-account"
	OpAddTransactionType    Op = "add-transaction-type"
	OpDeleteTransactionType Op = "delete-transaction-type"
	OpAddCategory           Op = "add-category"
	OpUpdateCategory        Op = "update-category"
	OpDeleteCategory        Op = "delete-category"
	OpAddTransaction        Op = "add-transaction"
	OpUpdateTransaction     Op = "update-transaction"
	OpDeleteTransaction     Op = "delete-transaction"
	OpImportSnapshot        Op = "import-snapshot"
)

// Command is the closed set of ledger operations. Apply is the single total
// function from (state, command) to state.
type Command interface {
	What() Op
}

// AddAccount appends a new account under a fresh id. No balance side effects.
type AddAccount struct{ Account Account }

// UpdateAccount replaces the account with the same id. Unmatched accounts
// pass through unchanged; a missing id makes the whole operation a pass-through.
type UpdateAccount struct{ Account Account }

// DeleteAccount removes the account. Transactions referencing it are left
// untouched; their references dangle and render as UnknownAccountName.
type DeleteAccount struct{ ID string }

// AddTransactionType appends a new transaction type under a fresh id.
type AddTransactionType struct{ Type TransactionType }

// DeleteTransactionType removes the transaction type by id.
type DeleteTransactionType struct{ ID string }

// AddCategory appends a new category under a fresh id.
type AddCategory struct{ Category Category }

// UpdateCategory replaces the category with the same id.
type UpdateCategory struct{ Category Category }

// DeleteCategory removes the category by id. Transactions keep the dangling
// category id and render it blank.
type DeleteCategory struct{ ID string }

// AddTransaction appends a new transaction under a fresh id and applies its
// signed effect to the referenced account. An unknown account reference
// leaves every balance untouched; the transaction is still appended.
type AddTransaction struct{ Transaction Transaction }

// UpdateTransaction replaces the transaction with the same id, reverting the
// old record's effect from its account before applying the new record's
// effect to its (possibly different) account, in that order.
type UpdateTransaction struct{ Transaction Transaction }

// DeleteTransaction removes the transaction by id and reverts its signed
// effect from its account.
type DeleteTransaction struct{ ID string }

// ImportSnapshot replaces whole collections with the payload's. Collections
// absent from the payload are kept. Balances are trusted as imported, never
// recomputed: a snapshot restores state that was already consistent.
type ImportSnapshot struct{ Snapshot Snapshot }

func (AddAccount) What() Op            { return OpAddAccount }
func (UpdateAccount) What() Op         { return OpUpdateAccount }
func (DeleteAccount) What() Op         { return OpDeleteAccount }
func (AddTransactionType) What() Op    { return OpAddTransactionType }
func (DeleteTransactionType) What() Op { return OpDeleteTransactionType }
func (AddCategory) What() Op           { return OpAddCategory }
func (UpdateCategory) What() Op        { return OpUpdateCategory }
func (DeleteCategory) What() Op        { return OpDeleteCategory }
func (AddTransaction) What() Op        { return OpAddTransaction }
func (UpdateTransaction) What() Op     { return OpUpdateTransaction }
func (DeleteTransaction) What() Op     { return OpDeleteTransaction }
func (ImportSnapshot) What() Op        { return OpImportSnapshot }

// Apply executes one command against the ledger and returns the resulting
// state. The input ledger is never mutated; untouched collections are shared
// between the old and new state.
//
// A failed operation (unknown transaction id on update/delete) returns the
// input state unchanged together with an error wrapping ErrNotFound. No
// command panics and none leaves a partially applied state behind.
func Apply(l *Ledger, cmd Command, ids IDSource) (*Ledger, error) {
	switch c := cmd.(type) {

	case AddAccount:
		a := c.Account
		a.ID = ids.NewID()
		next := *l
		next.Accounts = append(copyOf(l.Accounts), a)
		return &next, nil

	case UpdateAccount:
		next := *l
		next.Accounts = replaceAccount(l.Accounts, c.Account)
		return &next, nil

	case DeleteAccount:
		next := *l
		next.Accounts = deleteByID(l.Accounts, c.ID, func(a Account) string { return a.ID })
		return &next, nil

	case AddTransactionType:
		t := c.Type
		t.ID = ids.NewID()
		next := *l
		next.TransactionTypes = append(copyOf(l.TransactionTypes), t)
		return &next, nil

	case DeleteTransactionType:
		next := *l
		next.TransactionTypes = deleteByID(l.TransactionTypes, c.ID, func(t TransactionType) string { return t.ID })
		return &next, nil

	case AddCategory:
		cat := c.Category
		cat.ID = ids.NewID()
		next := *l
		next.Categories = append(copyOf(l.Categories), cat)
		return &next, nil

	case UpdateCategory:
		next := *l
		next.Categories = replaceCategory(l.Categories, c.Category)
		return &next, nil

	case DeleteCategory:
		next := *l
		next.Categories = deleteByID(l.Categories, c.ID, func(cat Category) string { return cat.ID })
		return &next, nil

	case AddTransaction:
		tx := c.Transaction
		tx.ID = ids.NewID()
		next := *l
		next.Transactions = append(copyOf(l.Transactions), tx)
		next.Accounts = applyEffect(l.Accounts, tx.Account, tx.Kind, tx.Amount)
		return &next, nil

	case UpdateTransaction:
		old := l.Transaction(c.Transaction.ID)
		if old == nil {
			return l, fmt.Errorf("update transaction %q: %w", c.Transaction.ID, ErrNotFound)
		}
		// Revert the old effect first, then apply the new one. The two use
		// independent signs: reversing the order corrupts the balance when
		// old and new land on the same account with different kinds.
		accounts := revertEffect(l.Accounts, old.Account, old.Kind, old.Amount)
		accounts = applyEffect(accounts, c.Transaction.Account, c.Transaction.Kind, c.Transaction.Amount)

		next := *l
		next.Accounts = accounts
		next.Transactions = replaceTransaction(l.Transactions, c.Transaction)
		return &next, nil

	case DeleteTransaction:
		old := l.Transaction(c.ID)
		if old == nil {
			return l, fmt.Errorf("delete transaction %q: %w", c.ID, ErrNotFound)
		}
		next := *l
		next.Accounts = revertEffect(l.Accounts, old.Account, old.Kind, old.Amount)
		next.Transactions = deleteByID(l.Transactions, c.ID, func(t Transaction) string { return t.ID })
		return &next, nil

	case ImportSnapshot:
		next := *l
		if c.Snapshot.Accounts != nil {
			next.Accounts = *c.Snapshot.Accounts
		}
		if c.Snapshot.Categories != nil {
			next.Categories = *c.Snapshot.Categories
		}
		if c.Snapshot.TransactionTypes != nil {
			next.TransactionTypes = *c.Snapshot.TransactionTypes
		}
		if c.Snapshot.Transactions != nil {
			next.Transactions = *c.Snapshot.Transactions
		}
		return &next, nil

	default:
		return l, fmt.Errorf("unsupported command: %T", cmd)
	}
}

func copyOf[T any](in []T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return out
}

func deleteByID[T any](in []T, id string, key func(T) string) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if key(v) != id {
			out = append(out, v)
		}
	}
	return out
}

func replaceAccount(in []Account, a Account) []Account {
	out := make([]Account, len(in))
	for i, v := range in {
		if v.ID == a.ID {
			out[i] = a
		} else {
			out[i] = v
		}
	}
	return out
}

func replaceCategory(in []Category, c Category) []Category {
	out := make([]Category, len(in))
	for i, v := range in {
		if v.ID == c.ID {
			out[i] = c
		} else {
			out[i] = v
		}
	}
	return out
}

func replaceTransaction(in []Transaction, t Transaction) []Transaction {
	out := make([]Transaction, len(in))
	for i, v := range in {
		if v.ID == t.ID {
			out[i] = t
		} else {
			out[i] = v
		}
	}
	return out
}
