package finance

import "fmt"

// AccountType classifies an account.
type AccountType string

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Credit     AccountType = "credit"
	Investment AccountType = "investment"
	Loan       AccountType = "loan"
)

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Checking, Savings, Credit, Investment, Loan:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type: %q", s)
	}
}

// Account is a place money lives. Balance is derived but stored: the
// reducer keeps it equal to the initial balance plus the sum of signed
// effects of all transactions referencing the account. It is never
// recomputed from scratch.
type Account struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Type    AccountType `json:"type"`
	Balance Money       `json:"balance"`
}

// TxKind is the sign-controlling kind of a transaction. It is the category
// string of the transaction type the user picked: "income", "expense" or
// "transfer". Anything that is not income debits the account.
type TxKind string

const (
	Income   TxKind = "income"
	Expense  TxKind = "expense"
	Transfer TxKind = "transfer"
)

// ParseTxKind parses a string into a TxKind. The ledger itself tolerates
// unknown kinds (anything non-income debits), so this is for input
// boundaries that want the closed set.
func ParseTxKind(s string) (TxKind, error) {
	switch TxKind(s) {
	case Income, Expense, Transfer:
		return TxKind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// TransactionType is a user-defined display label for a kind.
// Transfer In and Transfer Out are two labels over the same "transfer" kind;
// the ledger does not pair them into double-entry postings.
type TransactionType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind TxKind `json:"category"`
}

// Category groups transactions, with an ordered list of subcategory labels
// (unique within the category, possibly empty).
type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// HasSubcategory reports whether sub is one of the category's subcategories.
func (c Category) HasSubcategory(sub string) bool {
	for _, s := range c.Subcategories {
		if s == sub {
			return true
		}
	}
	return false
}
