package finance

import "strings"

// Transaction records a single movement of money on an account. Amount is
// non-negative; the sign of its effect on the account balance is implied by
// Kind, never stored.
type Transaction struct {
	ID          string  `json:"id"`
	Date        Date    `json:"date"`
	Time        Daytime `json:"time"`
	Kind        TxKind  `json:"type"`
	Account     string  `json:"account"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
	Subcategory string  `json:"subcategory,omitempty"`
	Amount      Money   `json:"amount"`
}

// MarshalJSON writes the transaction with the snapshot field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("time", t.Time)
	w.Append("type", t.Kind)
	w.Append("account", t.Account)
	w.Append("description", t.Description)
	w.Optional("category", t.Category)
	w.Optional("subcategory", t.Subcategory)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

// Before orders transactions chronologically by date then time-of-day.
func (t Transaction) Before(o Transaction) bool {
	if t.Date != o.Date {
		return t.Date.Before(o.Date)
	}
	return strings.Compare(t.Time.String(), o.Time.String()) < 0
}
