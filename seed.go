package bankist

import "time"

// DefaultAccounts returns the built-in demo data set the application is
// preloaded with. Movement timestamps are synthesised one day apart,
// ending yesterday, so the history reads as recent activity.
func DefaultAccounts() []*Account {
	seed := []struct {
		owner     string
		rate      float64
		pin       int
		currency  string
		locale    string
		movements []float64
	}{
		{"Jonas Schmedtmann", 1.2, 1111, "EUR", "pt-PT", []float64{200, 450, -400, 3000, -650, -130, 70, 1300}},
		{"Jessica Davis", 1.5, 2222, "USD", "en-US", []float64{5000, 3400, -150, -790, -3210, -1000, 8500, -30}},
		{"Steven Thomas Williams", 0.7, 3333, "GBP", "en-GB", []float64{200, -200, 340, -300, -20, 50, 400, -460}},
		{"Sarah Smith", 1, 4444, "EUR", "fr-FR", []float64{430, 1000, 700, 50, 90}},
	}

	accounts := make([]*Account, 0, len(seed))
	for _, s := range seed {
		a := NewAccount(s.owner, s.pin, P(s.rate), s.currency, s.locale)
		at := time.Now().AddDate(0, 0, -len(s.movements))
		for _, amount := range s.movements {
			a.record(M(amount, s.currency), at)
			at = at.AddDate(0, 0, 1)
		}
		accounts = append(accounts, a)
	}
	return accounts
}
