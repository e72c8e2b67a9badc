package bankist

import "testing"

func TestSessionTimer_CountdownToExpiry(t *testing.T) {
	var timer SessionTimer
	epoch := timer.Start(10)

	for i := 0; i < 9; i++ {
		if fired := timer.Tick(epoch); fired {
			t.Fatalf("tick %d fired expiry early (remaining %d)", i+1, timer.Remaining())
		}
	}
	if timer.State() != TimerRunning || timer.Remaining() != 1 {
		t.Fatalf("after 9 ticks: state %v remaining %d, want running 1", timer.State(), timer.Remaining())
	}

	// The tick crossing the zero boundary forces expiry, exactly once.
	if fired := timer.Tick(epoch); !fired {
		t.Fatal("10th tick did not fire expiry")
	}
	if timer.State() != TimerExpired {
		t.Fatalf("state = %v, want expired", timer.State())
	}
	if fired := timer.Tick(epoch); fired {
		t.Fatal("expiry fired a second time")
	}
}

func TestSessionTimer_ResetRestartsFromInitial(t *testing.T) {
	var timer SessionTimer
	epoch := timer.Start(10)
	for i := 0; i < 4; i++ {
		timer.Tick(epoch)
	}
	if timer.Remaining() != 6 {
		t.Fatalf("remaining = %d, want 6", timer.Remaining())
	}

	timer.Reset(10)
	if timer.Remaining() != 10 {
		t.Fatalf("after reset remaining = %d, want 10 (not the interrupted remainder)", timer.Remaining())
	}
	if timer.State() != TimerRunning {
		t.Fatalf("after reset state = %v, want running", timer.State())
	}
}

func TestSessionTimer_ReplacedCountdownTicksAreInert(t *testing.T) {
	var timer SessionTimer
	old := timer.Start(3)
	timer.Start(10)

	for i := 0; i < 5; i++ {
		if fired := timer.Tick(old); fired {
			t.Fatal("stale tick fired expiry")
		}
	}
	if timer.Remaining() != 10 {
		t.Fatalf("stale ticks changed remaining to %d, want 10", timer.Remaining())
	}
}

func TestSessionTimer_Stop(t *testing.T) {
	var timer SessionTimer
	epoch := timer.Start(5)
	timer.Stop()

	if timer.State() != TimerStopped {
		t.Fatalf("state = %v, want stopped", timer.State())
	}
	if fired := timer.Tick(epoch); fired {
		t.Fatal("tick after stop fired expiry")
	}
}

func TestSessionTimer_StartFromAnyState(t *testing.T) {
	var timer SessionTimer
	epoch := timer.Start(1)
	timer.Tick(epoch) // expire
	if timer.State() != TimerExpired {
		t.Fatalf("state = %v, want expired", timer.State())
	}

	timer.Start(7)
	if timer.State() != TimerRunning || timer.Remaining() != 7 {
		t.Fatalf("restart from expired: state %v remaining %d, want running 7", timer.State(), timer.Remaining())
	}
}
