// Package bankist implements a small in-memory multi-account ledger with
// session-scoped interactive operations: login, inter-account transfer,
// deferred loan issuance, account closure and a sortable movement view,
// under a countdown that expires the session when it runs out.
//
// The package is the domain engine only. Balances are never stored: they
// are always recomputed as the sum of an account's movement history, so
// they cannot drift. The presentation layer (see the renderer and cmd
// packages) feeds raw user input to the Engine and renders the View it
// returns after every state change.
package bankist
