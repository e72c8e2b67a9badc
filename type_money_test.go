package bankist

import "testing"

func TestMoney_Arithmetic(t *testing.T) {
	a, b := M(10.50, "EUR"), M(4.25, "EUR")

	if got := a.Add(b); !got.Equal(M(14.75, "EUR")) {
		t.Errorf("Add = %s", got.Amount())
	}
	if got := a.Sub(b); !got.Equal(M(6.25, "EUR")) {
		t.Errorf("Sub = %s", got.Amount())
	}
	if got := a.Neg(); !got.Equal(M(-10.50, "EUR")) {
		t.Errorf("Neg = %s", got.Amount())
	}
	if got := M(2000.9, "EUR").Floor(); !got.Equal(M(2000, "EUR")) {
		t.Errorf("Floor = %s", got.Amount())
	}
}

func TestMoney_WeakEmptyCurrency(t *testing.T) {
	sum := Money{}.Add(M(5, "EUR"))
	if sum.Currency() != "EUR" {
		t.Errorf("currency = %q, want EUR", sum.Currency())
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(0, "EUR").SignedString(); got != "-" {
		t.Errorf("zero = %q, want -", got)
	}
	if got := M(5, "EUR").SignedString(); got[0] != '+' {
		t.Errorf("positive = %q, want leading +", got)
	}
}

func TestPercent_Of(t *testing.T) {
	testCases := []struct {
		name   string
		rate   float64
		amount float64
		want   float64
	}{
		{"small deposit", 1.2, 70, 0.84},
		{"large deposit", 1.2, 1300, 15.6},
		{"whole rate", 1, 430, 4.3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := P(tc.rate).Of(M(tc.amount, "EUR"))
			if !got.Equal(M(tc.want, "EUR")) {
				t.Errorf("%v%% of %v = %s, want %v", tc.rate, tc.amount, got.Amount(), tc.want)
			}
		})
	}
}
