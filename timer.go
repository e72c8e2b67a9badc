package bankist

// TimerState is the state of a session countdown.
type TimerState int

const (
	TimerStopped TimerState = iota
	TimerRunning
	TimerExpired
)

func (s TimerState) String() string {
	switch s {
	case TimerStopped:
		return "stopped"
	case TimerRunning:
		return "running"
	case TimerExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// SessionTimer is a single-owner countdown that expires a session after a
// fixed number of ticks. Only one countdown may be active at a time:
// Start replaces any prior countdown and bumps the epoch, so ticks issued
// against a replaced countdown are inert. The caller owns the wall-clock
// cadence (one Tick per elapsed second); the timer only defines the state
// transition per tick.
type SessionTimer struct {
	state     TimerState
	remaining int
	epoch     int
}

// Start begins a countdown of initial ticks from any state, cancelling
// any prior countdown. It returns the epoch that subsequent Tick calls
// must present; ticks carrying an older epoch are ignored.
func (t *SessionTimer) Start(initial int) int {
	t.epoch++
	t.state = TimerRunning
	t.remaining = initial
	return t.epoch
}

// Reset restarts the countdown from the configured initial value, not
// from the interrupted remainder.
func (t *SessionTimer) Reset(initial int) int { return t.Start(initial) }

// Stop cancels the countdown from any state.
func (t *SessionTimer) Stop() {
	t.epoch++
	t.state = TimerStopped
	t.remaining = 0
}

// Tick advances the countdown by one second. It reports true exactly once
// per countdown: on the tick that crosses the zero boundary and forces
// expiry. Ticks from a replaced or stopped countdown report false and
// leave the state untouched.
func (t *SessionTimer) Tick(epoch int) (expired bool) {
	if epoch != t.epoch || t.state != TimerRunning {
		return false
	}
	if t.remaining > 1 {
		t.remaining--
		return false
	}
	t.state = TimerExpired
	t.remaining = 0
	return true
}

// State returns the current countdown state.
func (t *SessionTimer) State() TimerState { return t.state }

// Remaining returns the whole seconds left before forced logout.
func (t *SessionTimer) Remaining() int { return t.remaining }
