package finance

import (
	"iter"
	"strings"
)

// UnknownAccountName is the display fallback for transactions whose account
// reference dangles (the account was deleted, deletion never cascades).
const UnknownAccountName = "Unknown Account"

// Ledger is the full normalized state of the tracker at a point in time:
// accounts, categories, transaction types and transactions.
//
// A Ledger value is never mutated in place by core operations: Apply always
// returns a fresh Ledger, copying only the collections it changes.
type Ledger struct {
	Accounts         []Account         `json:"accounts"`
	TransactionTypes []TransactionType `json:"transactionTypes"`
	Categories       []Category        `json:"categories"`
	Transactions     []Transaction     `json:"transactions"`
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Accounts:         make([]Account, 0),
		TransactionTypes: make([]TransactionType, 0),
		Categories:       make([]Category, 0),
		Transactions:     make([]Transaction, 0),
	}
}

// Account returns the account with this id, or nil if unknown.
func (l *Ledger) Account(id string) *Account {
	for i := range l.Accounts {
		if l.Accounts[i].ID == id {
			return &l.Accounts[i]
		}
	}
	return nil
}

// Category returns the category with this id, or nil if unknown.
func (l *Ledger) Category(id string) *Category {
	for i := range l.Categories {
		if l.Categories[i].ID == id {
			return &l.Categories[i]
		}
	}
	return nil
}

// TransactionType returns the transaction type with this id, or nil if unknown.
func (l *Ledger) TransactionType(id string) *TransactionType {
	for i := range l.TransactionTypes {
		if l.TransactionTypes[i].ID == id {
			return &l.TransactionTypes[i]
		}
	}
	return nil
}

// Transaction returns the transaction with this id, or nil if unknown.
func (l *Ledger) Transaction(id string) *Transaction {
	for i := range l.Transactions {
		if l.Transactions[i].ID == id {
			return &l.Transactions[i]
		}
	}
	return nil
}

// AccountName resolves an account id to its display name, falling back to
// UnknownAccountName for dangling references.
func (l *Ledger) AccountName(id string) string {
	if a := l.Account(id); a != nil {
		return a.Name
	}
	return UnknownAccountName
}

// CategoryName resolves a category id to its display name. Dangling or empty
// references render blank.
func (l *Ledger) CategoryName(id string) string {
	if c := l.Category(id); c != nil {
		return c.Name
	}
	return ""
}

// AccountByName returns the account whose name matches case-insensitively,
// or nil when there is none.
func (l *Ledger) AccountByName(name string) *Account {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := range l.Accounts {
		if strings.ToLower(l.Accounts[i].Name) == name {
			return &l.Accounts[i]
		}
	}
	return nil
}

// CategoryByName returns the category whose name matches case-insensitively,
// or nil when there is none.
func (l *Ledger) CategoryByName(name string) *Category {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := range l.Categories {
		if strings.ToLower(l.Categories[i].Name) == name {
			return &l.Categories[i]
		}
	}
	return nil
}

// Select returns an iterator over transactions accepted by any of the
// filters. With no filter, every transaction is yielded in ledger order.
func (l *Ledger) Select(filters ...func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.Transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// ByKind returns a predicate that filters transactions by kind.
func ByKind(kind TxKind) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Kind == kind }
}

// ByAccount returns a predicate that filters transactions by account id.
func ByAccount(id string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Account == id }
}

// Snapshot is a partial ledger payload for bulk import. Nil collections were
// absent from the payload and leave the current state untouched; present
// collections replace their counterpart wholesale.
type Snapshot struct {
	Accounts         *[]Account         `json:"accounts"`
	Categories       *[]Category        `json:"categories"`
	TransactionTypes *[]TransactionType `json:"transactionTypes"`
	Transactions     *[]Transaction     `json:"transactions"`
}
