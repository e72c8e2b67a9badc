package bankist

import (
	"errors"
	"testing"
	"time"
)

func TestLedger_FindByUsername(t *testing.T) {
	ledger := NewLedger(
		testAccount(t, "Jonas Schmedtmann", 1111, 1.2, 200, -50),
		testAccount(t, "Jessica Davis", 2222, 1.5, 5000),
	)

	if a := ledger.FindByUsername("js"); a == nil || a.Owner() != "Jonas Schmedtmann" {
		t.Errorf("FindByUsername(js) = %v, want Jonas Schmedtmann", a)
	}
	// An absent result is a valid outcome, not a failure.
	if a := ledger.FindByUsername("nobody"); a != nil {
		t.Errorf("FindByUsername(nobody) = %v, want nil", a)
	}
	if a := ledger.FindByUsername("JS"); a != nil {
		t.Errorf("lookup is exact-match; FindByUsername(JS) = %v, want nil", a)
	}
}

func TestLedger_Apply(t *testing.T) {
	ledger := NewLedger(testAccount(t, "Sarah Smith", 4444, 1, 430, 1000))
	at := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if err := ledger.Apply("ss", M(-70, "EUR"), at); err != nil {
		t.Fatalf("Apply returned %v", err)
	}
	balance, err := ledger.BalanceOf("ss")
	if err != nil {
		t.Fatal(err)
	}
	if !balance.Equal(M(1360, "EUR")) {
		t.Errorf("BalanceOf(ss) = %s, want 1360", balance.Amount())
	}

	if err := ledger.Apply("nobody", M(10, "EUR"), at); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("Apply(nobody) = %v, want ErrAccountNotFound", err)
	}
}

func TestLedger_BalanceOfFreshAccount(t *testing.T) {
	ledger := NewLedger(testAccount(t, "Sarah Smith", 4444, 1))
	balance, err := ledger.BalanceOf("ss")
	if err != nil {
		t.Fatal(err)
	}
	if !balance.IsZero() {
		t.Errorf("fresh account balance = %s, want 0", balance.Amount())
	}
}

func TestLedger_Remove(t *testing.T) {
	ledger := NewLedger(
		testAccount(t, "Jonas Schmedtmann", 1111, 1.2),
		testAccount(t, "Jessica Davis", 2222, 1.5),
		testAccount(t, "Sarah Smith", 4444, 1),
	)

	if err := ledger.Remove("jd"); err != nil {
		t.Fatalf("Remove returned %v", err)
	}
	if ledger.FindByUsername("jd") != nil {
		t.Error("removed account still found")
	}
	if err := ledger.Remove("jd"); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("second Remove = %v, want ErrAccountNotFound", err)
	}

	// Remaining accounts keep their original order.
	var order []string
	for a := range ledger.Accounts() {
		order = append(order, a.Username())
	}
	if len(order) != 2 || order[0] != "js" || order[1] != "ss" {
		t.Errorf("accounts after removal = %v, want [js ss]", order)
	}
	if ledger.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ledger.Len())
	}
}

func TestLedger_BalanceMatchesMovementSum(t *testing.T) {
	a := testAccount(t, "Jonas Schmedtmann", 1111, 1.2, 200, 450, -400, 3000, -650, -130, 70, 1300)
	ledger := NewLedger(a)

	// Balance is always the recomputed sum, at every observation point.
	want := M(3840, "EUR")
	for i := 0; i < 3; i++ {
		balance, err := ledger.BalanceOf("js")
		if err != nil {
			t.Fatal(err)
		}
		if !balance.Equal(want) {
			t.Fatalf("BalanceOf(js) = %s, want %s", balance.Amount(), want.Amount())
		}
	}
}
