package bankist

import "testing"

func TestDeriveUsername(t *testing.T) {
	testCases := []struct {
		name  string
		owner string
		want  string
	}{
		{"two tokens", "Jonas Schmedtmann", "js"},
		{"three tokens", "Steven Thomas Williams", "stw"},
		{"single token", "Sarah", "s"},
		{"already lowercase", "jessica davis", "jd"},
		{"extra whitespace", "  Sarah   Smith ", "ss"},
		{"empty name", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveUsername(tc.owner); got != tc.want {
				t.Errorf("DeriveUsername(%q) = %q, want %q", tc.owner, got, tc.want)
			}
		})
	}
}

func TestDeriveUsername_StableAtConstruction(t *testing.T) {
	a := NewAccount("Jonas Schmedtmann", 1111, P(1.2), "EUR", "pt-PT")
	if a.Username() != "js" {
		t.Fatalf("Username() = %q, want %q", a.Username(), "js")
	}
}
