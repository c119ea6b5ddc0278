package pin

import "testing"

func TestModeRequestsQueueFirstWins(t *testing.T) {
	e := testEngine(&stubRules{}, 1)

	e.RequestMode(true, false, 5)
	if active, hit, ramp := e.InMode(); !active || !hit || ramp {
		t.Fatal("first request should start immediately")
	}

	// Two requests while active: only the first queues.
	e.RequestMode(false, true, 10)
	e.RequestMode(true, true, 99)

	e.EndMode()
	active, hit, ramp := e.InMode()
	if !active || hit || !ramp {
		t.Errorf("queued request should start on EndMode, got active=%v hit=%v ramp=%v", active, hit, ramp)
	}
	if e.ModeSecondsLeft() != 10 {
		t.Errorf("queued request should keep its duration, got %d", e.ModeSecondsLeft())
	}

	e.EndMode()
	if active, _, _ := e.InMode(); active {
		t.Error("second concurrent request should have been dropped")
	}
}

func TestModeCountsDownInFrames(t *testing.T) {
	e := testEngine(&stubRules{}, 1)
	e.RequestMode(true, false, 2)

	// 60 frames per mode second.
	for i := 0; i < 60; i++ {
		e.modeFrame()
	}
	if e.ModeSecondsLeft() != 1 {
		t.Fatalf("one second should have elapsed, %d left", e.ModeSecondsLeft())
	}
	for i := 0; i < 60; i++ {
		e.modeFrame()
	}
	if active, _, _ := e.InMode(); active {
		t.Error("mode should expire after its window")
	}
}
