package bankist

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

/*
	ImportAccounts reads the JSON export format of the upstream banking
	API, which nests the interesting fields under an "accounts" list:

	{
	    "accounts": [
	        {
	            "owner": "Jonas Schmedtmann",
	            "movements": [200, 450, -400],
	            "interestRate": 1.2,
	            "pin": 1111,
	            "currency": "EUR",
	            "locale": "pt-PT"
	        }
	    ]
	}

	Movement timestamps are not part of the export; the movements list is
	chronological and entries are stamped with the import time.
*/

// ImportAccounts extracts accounts from a decoded foreign export
// document.
func ImportAccounts(doc any) ([]*Account, error) {
	jlist, err := jsonpath.Get("$.accounts[*]", doc)
	if err != nil {
		return nil, fmt.Errorf("export has no accounts list: %w", err)
	}
	items, ok := jlist.([]any)
	if !ok {
		// because jsonpath is never clear about whether it returns a list
		// of answers or a single answer: promote a single account.
		items = []any{jlist}
	}

	accounts := make([]*Account, 0, len(items))
	for i, item := range items {
		owner, err := getString(item, "$.owner")
		if err != nil {
			return nil, fmt.Errorf("account #%d: %w", i, err)
		}
		pin, err := getNumber(item, "$.pin")
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", owner, err)
		}
		rate, err := getNumber(item, "$.interestRate")
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", owner, err)
		}
		currency, err := getString(item, "$.currency")
		if err != nil {
			currency = "EUR" // the export predates multi-currency support
		}
		locale, _ := getString(item, "$.locale")

		a := NewAccount(owner, int(pin), P(rate), currency, locale)
		jmovs, err := jsonpath.Get("$.movements[*]", item)
		if err == nil {
			movs, ok := jmovs.([]any)
			if !ok {
				movs = []any{jmovs}
			}
			at := time.Now()
			for j, jm := range movs {
				amount, ok := jm.(float64)
				if !ok {
					return nil, fmt.Errorf("account %q: movement #%d is not a number: %v", owner, j, jm)
				}
				a.record(M(amount, currency), at)
			}
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// ImportAccountsJSON decodes a foreign export stream and extracts its
// accounts.
func ImportAccountsJSON(r io.Reader) ([]*Account, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode export document: %w", err)
	}
	return ImportAccounts(doc)
}

func getString(doc any, path string) (string, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", fmt.Errorf("missing %q: %w", path, err)
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string: %v", path, jval)
	}
	return s, nil
}

func getNumber(doc any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, fmt.Errorf("missing %q: %w", path, err)
	}
	f, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%q is not a number: %v", path, jval)
	}
	return f, nil
}
