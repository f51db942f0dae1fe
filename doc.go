// Package finance implements the state-management core of a personal
// finance tracker: a normalized in-memory ledger of accounts, categorized
// transactions, categories and transaction types, mutated through a single
// command reducer that keeps account balances consistent with the signed
// effects of their transactions.
//
// The package is deliberately single-threaded: every operation is a pure
// function of (current state, command) → new state, and the Store serializes
// all mutations behind one entry point. Presentation layers (the cmd CLI,
// renderers) only ever read snapshots and dispatch commands.
package finance
