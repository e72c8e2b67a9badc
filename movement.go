package bankist

import "time"

// MovementKind classifies a movement by the sign of its amount.
type MovementKind string

const (
	KindDeposit    MovementKind = "deposit"
	KindWithdrawal MovementKind = "withdrawal"
)

// Movement is a single signed monetary entry in an account's history.
// A positive amount is an incoming deposit, a negative amount an outgoing
// withdrawal. Movements are immutable once recorded; a zero amount is
// never recorded.
type Movement struct {
	Amount Money
	Time   time.Time
}

// Kind returns the classification of the movement.
func (m Movement) Kind() MovementKind {
	if m.Amount.IsPositive() {
		return KindDeposit
	}
	return KindWithdrawal
}
