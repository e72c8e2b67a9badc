package bankist

// Session holds the currently logged-in account plus its view
// preferences. It is an owned value on the engine, never ambient global
// state, so the login/expiry state machine is testable without a UI.
type Session struct {
	// Active is the username of the logged-in account. It is a lookup key
	// into the ledger, not ownership; empty means logged out.
	Active string

	// Sorted switches the movement view to ascending amount order. It is
	// view-only and never reorders stored movements.
	Sorted bool
}

// LoggedIn reports whether an account is active.
func (s Session) LoggedIn() bool { return s.Active != "" }

// logout returns the session to the logged-out state, dropping view
// preferences with it.
func (s *Session) logout() { *s = Session{} }
