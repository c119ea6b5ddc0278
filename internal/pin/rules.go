package pin

// Rules is the capability set a table's rule variant implements. Exactly one
// implementation is active for the lifetime of a table instance, selected by
// table identity at construction; dispatch never changes at runtime.
//
// Trigger callbacks run once per rendered frame, after all physics sub-steps
// have settled, so rule code never observes mid-integration transients.
type Rules interface {
	// OnHitTrigger reports a discrete contact (target, bumper, kicker).
	OnHitTrigger(e *Engine, id TriggerID)
	// OnRollTrigger reports a roll-zone edge: entered=true on entry,
	// false on exit.
	OnRollTrigger(e *Engine, id TriggerID, entered bool)
	// OnFlipperPressed fires once per flipper press edge (lane-light
	// rotation and similar).
	OnFlipperPressed(e *Engine)
	// Frame runs once per rendered frame while a game is in progress.
	Frame(e *Engine)
	// OnDrain runs exactly once when the ball enters the drain; the
	// variant plays its bonus tally and may schedule tasks before the
	// engine closes out the ball.
	OnDrain(e *Engine)
	// OnTask receives expired scheduler tasks with kind >= TaskTableBase.
	OnTask(e *Engine, kind TaskKind)
}

// Mode window bookkeeping. A mode is a timed bonus-scoring window with its
// own hit/ramp sub-scores. Requests raised while a mode is active queue as
// pending (non-stacking, first request wins) and apply when the current mode
// ends.

// RequestMode starts a mode window, or queues it if one is already active.
func (e *Engine) RequestMode(hit, ramp bool, seconds int) {
	if e.inMode {
		if !e.pendingMode {
			e.pendingMode = true
			e.pendingModeHit = hit
			e.pendingModeRamp = ramp
			e.pendingModeSecs = seconds
		}
		return
	}
	e.startMode(hit, ramp, seconds)
}

func (e *Engine) startMode(hit, ramp bool, seconds int) {
	e.inMode = true
	e.inModeHit = hit
	e.inModeRamp = ramp
	e.modeTimeoutSecs = seconds
	e.modeTimeoutFrames = 60
}

// EndMode closes the current mode window immediately and starts any pending
// request.
func (e *Engine) EndMode() {
	e.inMode = false
	e.inModeHit = false
	e.inModeRamp = false
	e.modeTimeoutSecs = 0
	e.modeTimeoutFrames = 0
	if e.pendingMode {
		e.pendingMode = false
		e.startMode(e.pendingModeHit, e.pendingModeRamp, e.pendingModeSecs)
	}
}

// modeFrame counts the active mode window down by one rendered frame.
func (e *Engine) modeFrame() {
	if !e.inMode {
		return
	}
	e.modeTimeoutFrames--
	if e.modeTimeoutFrames > 0 {
		return
	}
	e.modeTimeoutFrames = 60
	e.modeTimeoutSecs--
	if e.modeTimeoutSecs <= 0 {
		e.EndMode()
	}
}

// InMode reports whether a mode window is active, and which sub-scores it
// opens.
func (e *Engine) InMode() (active, hit, ramp bool) {
	return e.inMode, e.inModeHit, e.inModeRamp
}

// ModeSecondsLeft returns the remaining whole seconds of the active mode.
func (e *Engine) ModeSecondsLeft() int {
	if !e.inMode {
		return 0
	}
	return e.modeTimeoutSecs
}
