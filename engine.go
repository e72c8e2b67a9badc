package bankist

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Config carries the tunable parameters of the operation engine.
type Config struct {
	// SessionTicks is the countdown length started at login, in ticks.
	SessionTicks int
	// LoanDelay is the processing delay before an approved loan is
	// credited.
	LoanDelay time.Duration
}

// DefaultConfig returns the reference behavior: a 10-tick session and a
// 3-second loan processing delay.
func DefaultConfig() Config {
	return Config{SessionTicks: 10, LoanDelay: 3 * time.Second}
}

// LoanResult is delivered through the loan completion callback once a
// deferred credit fires.
type LoanResult struct {
	Username string
	Amount   Money
	View     *View // post-credit view of the target account, nil on error
	Err      error // ErrTargetAccountGone if the account was closed meanwhile
}

// Engine validates and executes the interactive operations against the
// ledger and the active session.
//
// All operations take raw, untrusted string input. Malformed numeric
// input is normalised to a value that fails the relevant precondition,
// producing a silent no-op rather than a failure; only Login reports an
// error to the caller. The engine never panics on bad input.
//
// A single mutex serialises all state changes: the deferred loan credit
// and the session ticker call in from other goroutines.
type Engine struct {
	mu      sync.Mutex
	ledger  *Ledger
	session Session
	timer   SessionTimer
	cfg     Config
	log     *zap.Logger

	now      func() time.Time
	schedule func(time.Duration, func())

	onExpired     func()
	onLoanSettled func(LoanResult)
}

// NewEngine creates an engine over a ledger. A nil logger is replaced by
// a no-op logger.
func NewEngine(ledger *Ledger, cfg Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		ledger:   ledger,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		schedule: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// OnExpired registers the callback fired exactly once when the session
// countdown expires and forces a logout.
func (e *Engine) OnExpired(f func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onExpired = f
}

// OnLoanSettled registers the callback receiving the outcome of each
// deferred loan credit.
func (e *Engine) OnLoanSettled(f func(LoanResult)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onLoanSettled = f
}

// Session returns a copy of the current session state.
func (e *Engine) Session() Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Ledger returns the underlying ledger.
func (e *Engine) Ledger() *Ledger { return e.ledger }

// Remaining returns the whole seconds left on the session countdown.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer.Remaining()
}

// TimerState returns the state of the session countdown.
func (e *Engine) TimerState() TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer.State()
}

// TimerEpoch identifies the currently active countdown. A driver holds
// the epoch obtained after Login and presents it on every Tick, so ticks
// from a replaced countdown are inert.
func (e *Engine) TimerEpoch() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer.epoch
}

// Login authenticates a user by username and PIN. On success it makes
// the account active, restarts the session countdown at the configured
// length and returns a fresh view. On failure the session is left
// unchanged and ErrAuthenticationFailed is returned; unknown user and
// wrong PIN are deliberately indistinguishable.
func (e *Engine) Login(username, pin string) (*View, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	account := e.ledger.FindByUsername(strings.TrimSpace(username))
	p, ok := parsePin(pin)
	if account == nil || !ok || !account.PinEquals(p) {
		e.log.Warn("login rejected", zap.String("username", strings.TrimSpace(username)))
		return nil, ErrAuthenticationFailed
	}

	e.session = Session{Active: account.Username()}
	e.timer.Start(e.cfg.SessionTicks)
	e.log.Info("login",
		zap.String("username", account.Username()),
		zap.Int("session_ticks", e.cfg.SessionTicks))
	return NewView(account, e.session.Sorted), nil
}

// Transfer moves an amount from the active account to the named
// receiver, recorded as a matched pair of movements with the same
// timestamp. Unless every precondition holds (amount parses > 0,
// receiver exists and is not the sender, sender balance covers the
// amount) it is a silent no-op reporting applied == false.
//
// Transfer does not restart the session countdown.
func (e *Engine) Transfer(toUsername, amount string) (view *View, applied bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.session.LoggedIn() {
		return nil, false
	}
	sender := e.ledger.FindByUsername(e.session.Active)
	if sender == nil {
		return nil, false
	}
	receiver := e.ledger.FindByUsername(strings.TrimSpace(toUsername))
	amt := parseAmount(amount)

	if !amt.IsPositive() ||
		receiver == nil ||
		receiver == sender ||
		!sender.Balance().Amount().GreaterThanOrEqual(amt) {
		return nil, false
	}

	now := e.now()
	e.ledger.Apply(sender.Username(), M(amt.Neg(), sender.Currency()), now)
	e.ledger.Apply(receiver.Username(), M(amt, receiver.Currency()), now)
	e.log.Info("transfer",
		zap.String("from", sender.Username()),
		zap.String("to", receiver.Username()),
		zap.String("amount", amt.String()))
	return NewView(sender, e.session.Sorted), true
}

// RequestLoan asks for a loan on the active account. The requested
// amount is the integer floor of the parsed input. Approval requires a
// single past movement of at least 10% of the request; otherwise the
// call is a silent no-op reporting scheduled == false.
//
// The credit is deferred by the configured delay and targets the account
// by username, not by whatever session is active when the delay elapses.
// If the account was closed in the interim the credit becomes a no-op
// and the completion callback receives ErrTargetAccountGone. Concurrent
// requests each schedule their own independent credit.
func (e *Engine) RequestLoan(amount string) (scheduled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.session.LoggedIn() {
		return false
	}
	account := e.ledger.FindByUsername(e.session.Active)
	if account == nil {
		return false
	}

	amt := parseAmount(amount).Floor()
	if !amt.IsPositive() {
		return false
	}
	tenth := amt.Div(decimal.NewFromInt(10))
	qualified := false
	for _, m := range account.Movements() {
		if m.Amount.Amount().GreaterThanOrEqual(tenth) {
			qualified = true
			break
		}
	}
	if !qualified {
		return false
	}

	username := account.Username()
	credit := M(amt, account.Currency())
	e.log.Info("loan approved",
		zap.String("username", username),
		zap.String("amount", amt.String()),
		zap.Duration("delay", e.cfg.LoanDelay))
	e.schedule(e.cfg.LoanDelay, func() { e.settleLoan(username, credit) })
	return true
}

// settleLoan credits a previously approved loan. It runs after the
// processing delay, usually on the scheduler's goroutine.
func (e *Engine) settleLoan(username string, credit Money) {
	e.mu.Lock()
	result := LoanResult{Username: username, Amount: credit}
	account := e.ledger.FindByUsername(username)
	if account == nil {
		result.Err = ErrTargetAccountGone
		e.log.Warn("loan target gone", zap.String("username", username))
	} else {
		e.ledger.Apply(username, credit, e.now())
		sorted := e.session.Active == username && e.session.Sorted
		result.View = NewView(account, sorted)
		e.log.Info("loan credited",
			zap.String("username", username),
			zap.String("amount", credit.Amount().String()))
	}
	settled := e.onLoanSettled
	e.mu.Unlock()

	// The callback may call back into the engine.
	if settled != nil {
		settled(result)
	}
}

// CloseAccount terminates the active account. It succeeds only when the
// given username matches the active account and the PIN is numerically
// equal; any other combination is a silent no-op. On success the account
// is removed from the ledger, the session is cleared and the countdown
// stopped.
func (e *Engine) CloseAccount(username, pin string) (closed bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.session.LoggedIn() {
		return false
	}
	account := e.ledger.FindByUsername(e.session.Active)
	p, ok := parsePin(pin)
	if account == nil || strings.TrimSpace(username) != account.Username() || !ok || !account.PinEquals(p) {
		return false
	}

	e.ledger.Remove(account.Username())
	e.session.logout()
	e.timer.Stop()
	e.log.Info("account closed", zap.String("username", account.Username()))
	return true
}

// ToggleSort flips the view-only sort preference and returns the
// refreshed view of the active account, or nil when logged out. Stored
// movements are never reordered.
func (e *Engine) ToggleSort() *View {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session.Sorted = !e.session.Sorted
	account := e.ledger.FindByUsername(e.session.Active)
	if account == nil {
		return nil
	}
	return NewView(account, e.session.Sorted)
}

// CurrentView returns the view of the active account, or nil when
// logged out.
func (e *Engine) CurrentView() *View {
	e.mu.Lock()
	defer e.mu.Unlock()

	account := e.ledger.FindByUsername(e.session.Active)
	if account == nil {
		return nil
	}
	return NewView(account, e.session.Sorted)
}

// Tick advances the session countdown identified by epoch by one second.
// It reports whether that countdown is still live: a false return tells
// the driving ticker to stop. On the tick that crosses the zero boundary
// the session is forcibly logged out and the expiry callback fires
// exactly once.
func (e *Engine) Tick(epoch int) (live bool) {
	e.mu.Lock()
	if !e.timer.Tick(epoch) {
		live = e.timer.epoch == epoch && e.timer.State() == TimerRunning
		e.mu.Unlock()
		return live
	}
	username := e.session.Active
	e.session.logout()
	expired := e.onExpired
	e.mu.Unlock()

	e.log.Info("session expired", zap.String("username", username))
	if expired != nil {
		expired()
	}
	return false
}

// parsePin parses a numeric PIN, by value.
func parsePin(s string) (int, bool) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return p, true
}

// parseAmount parses a raw numeric input. Malformed input yields zero,
// which fails every amount precondition downstream.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
