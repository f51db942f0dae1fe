package finance

import (
	"errors"
	"testing"
)

// setupLedger creates a small ledger with two accounts and a deterministic
// id source for testing.
func setupLedger(t *testing.T) (*Ledger, IDSource) {
	t.Helper()
	l := &Ledger{
		Accounts: []Account{
			{ID: "1", Name: "Checking", Type: Checking, Balance: M(1000)},
			{ID: "2", Name: "Savings", Type: Savings, Balance: M(5000)},
		},
		Categories: []Category{
			{ID: "1", Name: "Food", Subcategories: []string{"Groceries"}},
		},
	}
	return l, NewSequence(100)
}

func mustApply(t *testing.T, l *Ledger, cmd Command, ids IDSource) *Ledger {
	t.Helper()
	next, err := Apply(l, cmd, ids)
	if err != nil {
		t.Fatalf("Apply(%s) failed: %v", cmd.What(), err)
	}
	return next
}

func TestApply_AddTransactionMovesBalance(t *testing.T) {
	l, ids := setupLedger(t)

	testCases := []struct {
		name        string
		kind        TxKind
		amount      Money
		wantBalance Money
	}{
		{"expense debits", Expense, M(100), M(900)},
		{"income credits", Income, M(100), M(1100)},
		{"transfer debits", Transfer, M(250), M(750)},
		{"unknown kind debits", TxKind("withdrawal"), M(50), M(950)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next := mustApply(t, l, AddTransaction{Transaction: Transaction{
				Date:    MustParseDate("2024-03-01"),
				Kind:    tc.kind,
				Account: "1",
				Amount:  tc.amount,
			}}, ids)

			if got := next.Account("1").Balance; !got.Equal(tc.wantBalance) {
				t.Errorf("balance = %s, want %s", got, tc.wantBalance)
			}
			if got := next.Account("2").Balance; !got.Equal(M(5000)) {
				t.Errorf("other account moved: %s", got)
			}
			if len(next.Transactions) != 1 {
				t.Fatalf("got %d transactions, want 1", len(next.Transactions))
			}
			if next.Transactions[0].ID == "" {
				t.Error("transaction got no id")
			}
		})
	}
}

func TestApply_AddTransactionUnknownAccount(t *testing.T) {
	l, ids := setupLedger(t)

	next := mustApply(t, l, AddTransaction{Transaction: Transaction{
		Kind: Expense, Account: "missing", Amount: M(100),
	}}, ids)

	// The transaction is recorded but no balance moves.
	if len(next.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(next.Transactions))
	}
	if got := next.Account("1").Balance; !got.Equal(M(1000)) {
		t.Errorf("balance moved to %s, want unchanged", got)
	}
}

// TestApply_UpdateTransactionKindChange covers the revert-then-apply order:
// a 100 expense edited into a 100 income on the same account must move the
// balance by +200, not back to where it was.
func TestApply_UpdateTransactionKindChange(t *testing.T) {
	l, ids := setupLedger(t)

	l = mustApply(t, l, AddTransaction{Transaction: Transaction{
		Kind: Expense, Account: "1", Amount: M(100),
	}}, ids)
	if got := l.Account("1").Balance; !got.Equal(M(900)) {
		t.Fatalf("after expense balance = %s, want $900.00", got)
	}

	edited := l.Transactions[0]
	edited.Kind = Income
	l = mustApply(t, l, UpdateTransaction{Transaction: edited}, ids)

	if got := l.Account("1").Balance; !got.Equal(M(1100)) {
		t.Errorf("after edit balance = %s, want $1,100.00", got)
	}
}

func TestApply_UpdateTransactionMovesAccounts(t *testing.T) {
	l, ids := setupLedger(t)

	l = mustApply(t, l, AddTransaction{Transaction: Transaction{
		Kind: Expense, Account: "1", Amount: M(300),
	}}, ids)

	edited := l.Transactions[0]
	edited.Account = "2"
	l = mustApply(t, l, UpdateTransaction{Transaction: edited}, ids)

	if got := l.Account("1").Balance; !got.Equal(M(1000)) {
		t.Errorf("old account balance = %s, want restored $1,000.00", got)
	}
	if got := l.Account("2").Balance; !got.Equal(M(4700)) {
		t.Errorf("new account balance = %s, want $4,700.00", got)
	}
}

func TestApply_UpdateTransactionIdempotent(t *testing.T) {
	l, ids := setupLedger(t)

	l = mustApply(t, l, AddTransaction{Transaction: Transaction{
		Kind: Expense, Account: "1", Amount: M(100),
	}}, ids)

	same := l.Transactions[0]
	l = mustApply(t, l, UpdateTransaction{Transaction: same}, ids)
	l = mustApply(t, l, UpdateTransaction{Transaction: same}, ids)

	if got := l.Account("1").Balance; !got.Equal(M(900)) {
		t.Errorf("balance = %s, want $900.00 after no-change updates", got)
	}
}

func TestApply_EditThenEditBackRestoresBalances(t *testing.T) {
	l, ids := setupLedger(t)

	l = mustApply(t, l, AddTransaction{Transaction: Transaction{
		Kind: Expense, Account: "1", Amount: M(200),
	}}, ids)
	original := l.Transactions[0]

	// Edit everything at once: other account, other kind, other amount.
	edited := original
	edited.Account = "2"
	edited.Kind = Income
	edited.Amount = M(75)
	l = mustApply(t, l, UpdateTransaction{Transaction: edited}, ids)

	if got := l.Account("1").Balance; !got.Equal(M(1000)) {
		t.Errorf("after edit account 1 = %s, want restored $1,000.00", got)
	}
	if got := l.Account("2").Balance; !got.Equal(M(5075)) {
		t.Errorf("after edit account 2 = %s, want $5,075.00", got)
	}

	// Editing back to the original record must restore both balances.
	l = mustApply(t, l, UpdateTransaction{Transaction: original}, ids)

	if got := l.Account("1").Balance; !got.Equal(M(800)) {
		t.Errorf("after edit back account 1 = %s, want $800.00", got)
	}
	if got := l.Account("2").Balance; !got.Equal(M(5000)) {
		t.Errorf("after edit back account 2 = %s, want $5,000.00", got)
	}
}

func TestApply_DeleteTransactionRevertsBalance(t *testing.T) {
	l, ids := setupLedger(t)

	l = mustApply(t, l, AddTransaction{Transaction: Transaction{
		Kind: Income, Account: "1", Amount: M(500),
	}}, ids)
	id := l.Transactions[0].ID

	l = mustApply(t, l, DeleteTransaction{ID: id}, ids)

	if got := l.Account("1").Balance; !got.Equal(M(1000)) {
		t.Errorf("balance = %s, want restored $1,000.00", got)
	}
	if len(l.Transactions) != 0 {
		t.Errorf("got %d transactions, want 0", len(l.Transactions))
	}
}

func TestApply_NotFoundIsNoOp(t *testing.T) {
	l, ids := setupLedger(t)

	testCases := []struct {
		name string
		cmd  Command
	}{
		{"update missing", UpdateTransaction{Transaction: Transaction{ID: "nope", Account: "1", Kind: Expense, Amount: M(10)}}},
		{"delete missing", DeleteTransaction{ID: "nope"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Apply(l, tc.cmd, ids)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("Apply() error = %v, want ErrNotFound", err)
			}
			if next != l {
				t.Error("state changed on a failed operation")
			}
		})
	}
}

func TestApply_DeleteAccountKeepsTransactions(t *testing.T) {
	l, ids := setupLedger(t)

	l = mustApply(t, l, AddTransaction{Transaction: Transaction{
		Kind: Expense, Account: "1", Amount: M(50),
	}}, ids)
	l = mustApply(t, l, DeleteAccount{ID: "1"}, ids)

	if l.Account("1") != nil {
		t.Fatal("account still present")
	}
	if len(l.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1 kept", len(l.Transactions))
	}
	if got := l.AccountName(l.Transactions[0].Account); got != UnknownAccountName {
		t.Errorf("AccountName() = %q, want %q", got, UnknownAccountName)
	}
}

func TestApply_NeverMutatesInput(t *testing.T) {
	l, ids := setupLedger(t)
	before := l.Account("1").Balance

	mustApply(t, l, AddTransaction{Transaction: Transaction{
		Kind: Expense, Account: "1", Amount: M(999),
	}}, ids)

	if got := l.Account("1").Balance; !got.Equal(before) {
		t.Errorf("input ledger mutated: balance %s, want %s", got, before)
	}
	if len(l.Transactions) != 0 {
		t.Errorf("input ledger grew %d transactions", len(l.Transactions))
	}
}

func TestApply_UpdateAccountUnknownIDPassesThrough(t *testing.T) {
	l, ids := setupLedger(t)

	next := mustApply(t, l, UpdateAccount{Account: Account{ID: "nope", Name: "Ghost"}}, ids)

	if len(next.Accounts) != 2 {
		t.Fatalf("got %d accounts, want 2", len(next.Accounts))
	}
	for _, a := range next.Accounts {
		if a.Name == "Ghost" {
			t.Error("unknown account was inserted")
		}
	}
}

func TestApply_CategoryLifecycle(t *testing.T) {
	l, ids := setupLedger(t)

	l = mustApply(t, l, AddCategory{Category: Category{Name: "Travel", Subcategories: []string{"Flights"}}}, ids)
	created := l.Categories[len(l.Categories)-1]
	if created.ID == "" || created.Name != "Travel" {
		t.Fatalf("created category = %+v", created)
	}

	created.Subcategories = []string{"Flights", "Hotels"}
	l = mustApply(t, l, UpdateCategory{Category: created}, ids)
	if got := l.Category(created.ID); !got.HasSubcategory("Hotels") {
		t.Errorf("updated category = %+v, want Hotels subcategory", got)
	}

	l = mustApply(t, l, DeleteCategory{ID: created.ID}, ids)
	if l.Category(created.ID) != nil {
		t.Error("category still present after delete")
	}
}

func TestApply_ImportSnapshotPartialMerge(t *testing.T) {
	l, ids := setupLedger(t)

	accounts := []Account{{ID: "9", Name: "Imported", Type: Checking, Balance: M(42)}}
	next := mustApply(t, l, ImportSnapshot{Snapshot: Snapshot{Accounts: &accounts}}, ids)

	// Accounts replaced wholesale, balance trusted as imported.
	if len(next.Accounts) != 1 || !next.Accounts[0].Balance.Equal(M(42)) {
		t.Fatalf("accounts = %+v, want the imported one", next.Accounts)
	}
	// Absent collections are kept.
	if len(next.Categories) != 1 {
		t.Errorf("categories = %+v, want kept", next.Categories)
	}
}
