package bankist

import (
	"fmt"
	"iter"
	"time"
)

// Ledger is the full collection of accounts.
//
// Accounts keep their original insertion order for listing; lookups go
// through a username index. The set of accounts only shrinks through
// Remove (account closure).
type Ledger struct {
	accounts []*Account
	index    map[string]*Account
}

// NewLedger creates a ledger holding the given accounts. Usernames are
// derived at account construction and are immutable afterwards; a
// collision-free account set is a precondition on the seed data.
func NewLedger(accounts ...*Account) *Ledger {
	l := &Ledger{
		accounts: make([]*Account, 0, len(accounts)),
		index:    make(map[string]*Account, len(accounts)),
	}
	for _, a := range accounts {
		l.accounts = append(l.accounts, a)
		l.index[a.Username()] = a
	}
	return l
}

// FindByUsername returns the account with this exact username, or nil if
// unknown. A nil result is a valid "not found" outcome, not a failure.
func (l *Ledger) FindByUsername(username string) *Account {
	return l.index[username]
}

// Apply appends a movement to the named account's history. No validation
// is performed here; that is the operation engine's responsibility.
func (l *Ledger) Apply(username string, amount Money, at time.Time) error {
	a := l.index[username]
	if a == nil {
		return fmt.Errorf("apply %s to %q: %w", amount.SignedString(), username, ErrAccountNotFound)
	}
	a.record(amount, at)
	return nil
}

// Remove deletes the account from the ledger. It is safe to remove the
// account currently held by a session; the caller is responsible for
// clearing the session afterwards.
func (l *Ledger) Remove(username string) error {
	if _, ok := l.index[username]; !ok {
		return fmt.Errorf("remove %q: %w", username, ErrAccountNotFound)
	}
	delete(l.index, username)
	for i, a := range l.accounts {
		if a.Username() == username {
			l.accounts = append(l.accounts[:i], l.accounts[i+1:]...)
			break
		}
	}
	return nil
}

// BalanceOf computes the named account's balance as the sum of all its
// movement amounts.
func (l *Ledger) BalanceOf(username string) (Money, error) {
	a := l.index[username]
	if a == nil {
		return Money{}, fmt.Errorf("balance of %q: %w", username, ErrAccountNotFound)
	}
	return a.Balance(), nil
}

// Accounts returns an iterator over accounts in original insertion order.
func (l *Ledger) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, a := range l.accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// Len returns the number of accounts currently in the ledger.
func (l *Ledger) Len() int { return len(l.accounts) }
