package bankist

import (
	"testing"
	"time"
)

// testAccount builds an account with a movement per amount, one day
// apart, starting 2025-01-01.
func testAccount(t *testing.T, owner string, pin int, rate float64, amounts ...float64) *Account {
	t.Helper()
	a := NewAccount(owner, pin, P(rate), "EUR", "pt-PT")
	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, amount := range amounts {
		a.record(M(amount, "EUR"), at)
		at = at.Add(24 * time.Hour)
	}
	return a
}

// stubScheduler records scheduled tasks so tests control when deferred
// loan credits fire.
type stubScheduler struct {
	pending []func()
}

func (s *stubScheduler) schedule(_ time.Duration, f func()) {
	s.pending = append(s.pending, f)
}

// fire runs all pending tasks in scheduling order.
func (s *stubScheduler) fire() {
	tasks := s.pending
	s.pending = nil
	for _, f := range tasks {
		f()
	}
}

// newTestEngine wires an engine with a fixed clock and a stub scheduler
// over the given accounts.
func newTestEngine(t *testing.T, accounts ...*Account) (*Engine, *stubScheduler) {
	t.Helper()
	e := NewEngine(NewLedger(accounts...), DefaultConfig(), nil)
	s := &stubScheduler{}
	e.schedule = s.schedule
	e.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return e, s
}

// amounts collects the stored movement amounts of an account, in storage
// order.
func amounts(a *Account) []string {
	var out []string
	for _, m := range a.Movements() {
		out = append(out, m.Amount.Amount().String())
	}
	return out
}
