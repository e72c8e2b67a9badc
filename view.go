package bankist

import "sort"

// Row pairs a movement with its original 1-based chronological position.
// The position reflects insertion order even when the view is sorted.
type Row struct {
	Position int
	Movement
}

// View is a display-ready projection of an account's current state.
// It is derived from the movement history alone and never persisted.
type View struct {
	Owner     string
	FirstName string
	Username  string
	Locale    string

	Balance  Money
	Income   Money // sum of deposits
	Expense  Money // absolute sum of withdrawals
	Interest Money // per-deposit interest, small contributions excluded

	Rows   []Row
	Sorted bool
}

// NewView projects an account into a view. With sorted set, rows are
// stable-sorted by ascending amount; ties keep their original relative
// order. The account's stored movements are never touched.
func NewView(a *Account, sorted bool) *View {
	v := &View{
		Owner:     a.Owner(),
		FirstName: a.FirstName(),
		Username:  a.Username(),
		Locale:    a.Locale(),
		Balance:   M(0, a.Currency()),
		Income:    M(0, a.Currency()),
		Expense:   M(0, a.Currency()),
		Interest:  M(0, a.Currency()),
		Sorted:    sorted,
	}

	one := M(1, a.Currency())
	for i, m := range a.Movements() {
		v.Rows = append(v.Rows, Row{Position: i + 1, Movement: m})
		v.Balance = v.Balance.Add(m.Amount)
		if m.Amount.IsPositive() {
			v.Income = v.Income.Add(m.Amount)
			// Interest accrues per deposit; a contribution below one unit
			// of currency is dropped, not the total.
			if contribution := a.InterestRate().Of(m.Amount); contribution.GreaterThanOrEqual(one) {
				v.Interest = v.Interest.Add(contribution)
			}
		} else {
			v.Expense = v.Expense.Sub(m.Amount)
		}
	}

	if sorted {
		sort.SliceStable(v.Rows, func(i, j int) bool {
			return v.Rows[i].Amount.LessThan(v.Rows[j].Amount)
		})
	}
	return v
}
