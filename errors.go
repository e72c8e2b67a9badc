package bankist

import "errors"

var (
	// ErrAccountNotFound reports a ledger lookup for a username that has no
	// account. The operation engine guards its lookups, so reaching it
	// indicates a programming error in the caller; it is fatal to the
	// triggering call only.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAuthenticationFailed reports a login with an unknown username or a
	// wrong PIN. The two cases are deliberately not distinguished.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrTargetAccountGone reports that the target of a deferred loan
	// credit was closed before the credit fired. The credit becomes a safe
	// no-op and this is delivered as a notice, not a fault.
	ErrTargetAccountGone = errors.New("loan target account gone")
)
