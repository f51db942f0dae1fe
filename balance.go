package finance

// signedEffect is the contribution a transaction makes to its account
// balance: income credits the account, every other kind debits it.
func signedEffect(kind TxKind, amount Money) Money {
	if kind == Income {
		return amount
	}
	return amount.Neg()
}

// adjustBalance returns accounts with the matching account's balance moved
// by delta; all other accounts pass through unchanged. When no account
// matches the id, the input is returned as-is: the caller's operation
// proceeds without a balance side effect.
func adjustBalance(accounts []Account, id string, delta Money) []Account {
	out := make([]Account, len(accounts))
	for i, a := range accounts {
		if a.ID == id {
			a.Balance = a.Balance.Add(delta)
		}
		out[i] = a
	}
	return out
}

// applyEffect applies a transaction's signed effect to its account balance.
func applyEffect(accounts []Account, id string, kind TxKind, amount Money) []Account {
	return adjustBalance(accounts, id, signedEffect(kind, amount))
}

// revertEffect undoes a transaction's signed effect from its account
// balance. In updateTransaction the old effect is reverted before the new
// one is applied; the two are independent adjustments, not inverses of each
// other when the kind changed.
func revertEffect(accounts []Account, id string, kind TxKind, amount Money) []Account {
	return adjustBalance(accounts, id, signedEffect(kind, amount).Neg())
}
