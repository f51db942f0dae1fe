package finance

// Seed returns the fixed starter dataset used when no persisted snapshot
// exists yet. Ids below 100 are reserved for seeding; the Store's id source
// starts past them.
func Seed() *Ledger {
	return &Ledger{
		Accounts: []Account{
			{ID: "1", Name: "Checking Account", Type: Checking, Balance: M(2500.00)},
			{ID: "2", Name: "Savings Account", Type: Savings, Balance: M(15000.00)},
			{ID: "3", Name: "Credit Card", Type: Credit, Balance: M(-850.00)},
		},
		TransactionTypes: []TransactionType{
			{ID: "1", Name: "Income", Kind: Income},
			{ID: "2", Name: "Expense", Kind: Expense},
			{ID: "3", Name: "Transfer In", Kind: Transfer},
			{ID: "4", Name: "Transfer Out", Kind: Transfer},
		},
		Categories: []Category{
			{ID: "1", Name: "Food & Dining", Subcategories: []string{"Restaurants", "Groceries", "Coffee"}},
			{ID: "2", Name: "Transportation", Subcategories: []string{"Gas", "Public Transit", "Parking"}},
			{ID: "3", Name: "Entertainment", Subcategories: []string{"Movies", "Games", "Subscriptions"}},
			{ID: "4", Name: "Income", Subcategories: []string{"Salary", "Freelance", "Investment"}},
		},
		Transactions: []Transaction{
			{
				ID:          "1",
				Date:        MustParseDate("2024-01-15"),
				Time:        "14:30",
				Kind:        Expense,
				Account:     "1",
				Description: "Grocery shopping",
				Category:    "1",
				Subcategory: "Groceries",
				Amount:      M(125.50),
			},
			{
				ID:          "2",
				Date:        MustParseDate("2024-01-14"),
				Time:        "09:00",
				Kind:        Income,
				Account:     "1",
				Description: "Salary deposit",
				Category:    "4",
				Subcategory: "Salary",
				Amount:      M(5000.00),
			},
		},
	}
}
