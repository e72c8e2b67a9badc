package bankist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// movementRecord is a specialized struct for (de)coding a movement line
// field.
type movementRecord struct {
	Amount decimal.Decimal `json:"amount"`
	Time   time.Time       `json:"time"`
}

// accountRecord is a specialized struct for (de)coding one account per
// JSONL line.
type accountRecord struct {
	Owner        string           `json:"owner"`
	Pin          int              `json:"pin"`
	InterestRate decimal.Decimal  `json:"interestRate"`
	Currency     string           `json:"currency"`
	Locale       string           `json:"locale,omitempty"`
	Movements    []movementRecord `json:"movements"`
}

// DecodeAccounts decodes accounts from a stream of JSONL data, one
// account per line. Empty lines are skipped. Usernames are derived at
// construction; movement order on the line is the chronological order.
func DecodeAccounts(r io.Reader) ([]*Account, error) {
	var accounts []*Account
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		var rec accountRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("could not decode account on line %d: %w", line, err)
		}
		if rec.Owner == "" {
			return nil, fmt.Errorf("account on line %d has no owner", line)
		}
		a := NewAccount(rec.Owner, rec.Pin, P(rec.InterestRate), rec.Currency, rec.Locale)
		for _, m := range rec.Movements {
			a.record(M(m.Amount, rec.Currency), m.Time)
		}
		accounts = append(accounts, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read accounts: %w", err)
	}
	return accounts, nil
}

// EncodeAccounts writes accounts as JSONL, one account per line, in the
// format DecodeAccounts reads back.
func EncodeAccounts(w io.Writer, accounts ...*Account) error {
	for _, a := range accounts {
		rec := accountRecord{
			Owner:        a.Owner(),
			Pin:          a.pin,
			InterestRate: a.InterestRate().value,
			Currency:     a.Currency(),
			Locale:       a.Locale(),
		}
		for _, m := range a.Movements() {
			rec.Movements = append(rec.Movements, movementRecord{Amount: m.Amount.Amount(), Time: m.Time})
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("could not encode account %q: %w", a.Username(), err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("could not write account %q: %w", a.Username(), err)
		}
	}
	return nil
}
