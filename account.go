package bankist

import (
	"iter"
	"strings"
	"time"
)

// Account is a single ledger record: identity, movement history and
// display settings.
//
// The balance is never stored: it is recomputed as the sum of all
// movement amounts whenever needed, so it cannot drift from the history.
type Account struct {
	owner        string
	username     string // derived once at ledger construction, immutable after
	pin          int
	interestRate Percent
	currency     string // display hint, opaque to the numeric logic
	locale       string // display hint, opaque to the numeric logic
	movements    []Movement
}

// NewAccount creates an account for an owner. The username is derived
// from the owner name. Movement history starts empty; use the ledger to
// record movements.
func NewAccount(owner string, pin int, interestRate Percent, currency, locale string) *Account {
	return &Account{
		owner:        owner,
		username:     DeriveUsername(owner),
		pin:          pin,
		interestRate: interestRate,
		currency:     currency,
		locale:       locale,
	}
}

func (a *Account) Owner() string         { return a.owner }
func (a *Account) Username() string      { return a.username }
func (a *Account) InterestRate() Percent { return a.interestRate }
func (a *Account) Currency() string      { return a.currency }
func (a *Account) Locale() string        { return a.locale }

// FirstName returns the first token of the owner name, used for greetings.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// PinEquals compares the account PIN by numeric value.
func (a *Account) PinEquals(pin int) bool { return a.pin == pin }

// Balance is the sum of all movement amounts. Zero for a fresh account.
func (a *Account) Balance() Money {
	balance := M(0, a.currency)
	for _, m := range a.movements {
		balance = balance.Add(m.Amount)
	}
	return balance
}

// Movements returns an iterator yielding each movement with its
// chronological index, in original insertion order.
func (a *Account) Movements() iter.Seq2[int, Movement] {
	return func(yield func(int, Movement) bool) {
		for i, m := range a.movements {
			if !yield(i, m) {
				return
			}
		}
	}
}

// MovementCount returns the number of recorded movements.
func (a *Account) MovementCount() int { return len(a.movements) }

// record appends a movement to the history. Zero amounts are never
// recorded. Validation is the operation engine's responsibility.
func (a *Account) record(amount Money, at time.Time) {
	if amount.IsZero() {
		return
	}
	a.movements = append(a.movements, Movement{Amount: amount, Time: at})
}
