package finance

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// This file implements the bulk import/export formats:
//   - tabular CSV rows with free-text account and category names, merged
//     through a case-insensitive resolver into addTransaction calls, and
//   - whole-snapshot JSON, which bypasses the resolver entirely.

// csvHeader is the tabular column contract, in order.
var csvHeader = []string{"Date", "Time", "Type", "Account", "Description", "Category", "Subcategory", "Amount"}

// ImportReport accounts for a tabular import: how many rows became
// transactions and which rows were rejected.
type ImportReport struct {
	Imported int
	Errors   []string
}

// Failed reports a full failure: rows were rejected and none succeeded.
func (r *ImportReport) Failed() bool { return r.Imported == 0 && len(r.Errors) > 0 }

// Partial reports a mixed outcome: some rows applied, some rejected.
func (r *ImportReport) Partial() bool { return r.Imported > 0 && len(r.Errors) > 0 }

// Message summarizes the outcome the way the import screen reports it.
func (r *ImportReport) Message() string {
	switch {
	case r.Failed():
		shown := r.Errors
		ellipsis := ""
		if len(shown) > 3 {
			shown, ellipsis = shown[:3], "..."
		}
		return fmt.Sprintf("Import failed. Errors: %s%s", strings.Join(shown, ", "), ellipsis)
	case r.Partial():
		return fmt.Sprintf("Imported %d transactions successfully. %d errors occurred.", r.Imported, len(r.Errors))
	default:
		return fmt.Sprintf("Imported %d transactions successfully!", r.Imported)
	}
}

// ImportCSV reads tabular rows from r and merges them into the store.
//
// Account and category names are resolved case-insensitively against the
// current state; missing ones are created first (zero balance, checking
// type, no subcategories), one record per distinct name no matter how many
// rows mention it. Each accepted row then becomes one addTransaction
// dispatch, so balances update incrementally under the store contract.
//
// A row is rejected (counted, not applied) when it resolves to no account
// or its amount parses to zero. Rejected rows never block the rest.
func ImportCSV(store *Store, r io.Reader) (*ImportReport, error) {
	rows, err := readCSVRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in the file")
	}

	// First pass: one fresh account/category per distinct unknown name.
	state := store.State()
	newAccounts := make(map[string]bool)
	newCategories := make(map[string]bool)
	for _, row := range rows {
		if name := strings.TrimSpace(row["Account"]); name != "" {
			key := strings.ToLower(name)
			if state.AccountByName(name) == nil && !newAccounts[key] {
				newAccounts[key] = true
				state, _ = store.Dispatch(AddAccount{Account: Account{Name: name, Type: Checking, Balance: M(0)}})
			}
		}
		if name := strings.TrimSpace(row["Category"]); name != "" {
			key := strings.ToLower(name)
			if state.CategoryByName(name) == nil && !newCategories[key] {
				newCategories[key] = true
				state, _ = store.Dispatch(AddCategory{Category: Category{Name: name, Subcategories: []string{}}})
			}
		}
	}

	// Second pass: resolve each row against the (possibly grown) state and
	// apply it as a regular transaction.
	report := &ImportReport{}
	for i, row := range rows {
		tx, err := resolveRow(store.State(), row)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		if _, err := store.Dispatch(AddTransaction{Transaction: tx}); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		report.Imported++
	}
	return report, nil
}

// resolveRow builds a transaction from one tabular row, applying the row
// defaults: today's date for unparseable dates, 12:00 for missing times,
// expense for missing types, zero for unparseable amounts.
func resolveRow(state *Ledger, row map[string]string) (Transaction, error) {
	accountID := ""
	if name := strings.TrimSpace(row["Account"]); name != "" {
		if a := state.AccountByName(name); a != nil {
			accountID = a.ID
		}
	}
	if accountID == "" && len(state.Accounts) > 0 {
		accountID = state.Accounts[0].ID
	}

	categoryID := ""
	if name := strings.TrimSpace(row["Category"]); name != "" {
		if c := state.CategoryByName(name); c != nil {
			categoryID = c.ID
		}
	}

	kind := TxKind(strings.ToLower(strings.TrimSpace(row["Type"])))
	if kind == "" {
		kind = Expense
	}

	amount, _ := strconv.ParseFloat(strings.TrimSpace(row["Amount"]), 64)

	tx := Transaction{
		Date:        ParseImportDate(row["Date"]),
		Time:        ParseDaytime(row["Time"]),
		Kind:        kind,
		Account:     accountID,
		Description: row["Description"],
		Category:    categoryID,
		Subcategory: row["Subcategory"],
		Amount:      M(amount),
	}

	if tx.Account == "" || tx.Amount.IsZero() {
		return Transaction{}, fmt.Errorf("missing account or invalid amount")
	}
	return tx, nil
}

// readCSVRows parses a CSV stream into header-keyed rows. Column order is
// free; unknown columns are ignored.
func readCSVRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse tabular file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[strings.TrimSpace(name)] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ExportCSV writes all transactions as tabular rows with the standard
// header, resolving account and category references to display names and
// formatting dates in the DD/MM/YYYY interchange form.
func ExportCSV(l *Ledger, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for _, tx := range l.Transactions {
		account := "Unknown"
		if a := l.Account(tx.Account); a != nil {
			account = a.Name
		}
		record := []string{
			tx.Date.Export(),
			tx.Time.String(),
			string(tx.Kind),
			account,
			tx.Description,
			l.CategoryName(tx.Category),
			tx.Subcategory,
			tx.Amount.value.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write transaction %q: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportJSON restores a whole snapshot from r. The payload must carry at
// least the accounts and transactions collections; anything else present
// (categories, transactionTypes) is merged too. The resolver is bypassed
// and balances are trusted as given.
func ImportJSON(store *Store, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("cannot read import file: %w", err)
	}

	// Interrogate the untyped payload before committing to a decode: both
	// required collections must exist at the top level.
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("invalid JSON format: %w", err)
	}
	for _, key := range []string{"accounts", "transactions"} {
		if _, err := jsonpath.Get("$."+key, payload); err != nil {
			return fmt.Errorf("invalid JSON format: missing %q", key)
		}
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("invalid JSON format: %w", err)
	}
	if _, err := store.Dispatch(ImportSnapshot{Snapshot: snapshot}); err != nil {
		return err
	}
	return nil
}

// ExportJSON writes the full snapshot plus an exportDate timestamp, with
// collections in the export field order.
func ExportJSON(l *Ledger, w io.Writer) error {
	var obj jsonObjectWriter
	obj.Append("accounts", l.Accounts)
	obj.Append("categories", l.Categories)
	obj.Append("transactionTypes", l.TransactionTypes)
	obj.Append("transactions", l.Transactions)
	obj.Append("exportDate", time.Now().UTC().Format(time.RFC3339))

	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return fmt.Errorf("cannot format snapshot: %w", err)
	}
	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}
