package bankist

import "strings"

// DeriveUsername maps an owner's full name to its short login identifier:
// the lowercase first letter of each whitespace-separated token,
// concatenated in token order. "Steven Thomas Williams" becomes "stw".
//
// Deterministic and pure. An empty name yields an empty string; collision
// resolution is not attempted, the seed data is assumed collision-free.
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, token := range strings.Fields(owner) {
		first := []rune(token)[0]
		b.WriteString(strings.ToLower(string(first)))
	}
	return b.String()
}
