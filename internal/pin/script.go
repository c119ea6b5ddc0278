package pin

// ScriptBind names a semantic event a scripted cue sequence can be bound to.
// Layouts map binds to sequences; binding an event with no sequence is a
// normal no-op.
type ScriptBind int

const (
	BindInit ScriptBind = iota
	BindGameStart
	BindGameStartPlayers
	BindBallStart
	BindTilt
	BindConfirmQuit
	BindDrained
	BindGameOver
	BindHighScore
	BindMatch

	// BindTableBase is the first bind value available for table-specific
	// sequences.
	BindTableBase ScriptBind = 100
)

// OpKind discriminates script step payloads.
type OpKind int

const (
	OpDmClear  OpKind = iota // clear the dot-matrix
	OpDmText                 // draw text at a DM coordinate
	OpDmBlink                // start/stop DM blinking
	OpLight                  // switch a light on/off
	OpLightBlink             // blink a light with a period
	OpLightsOff              // all lights off
	OpSfx                    // trigger a sound effect
	OpJingle                 // trigger a jingle bind
)

// ScriptOp is one cue payload: a dot-matrix draw, a light change, or a sound
// trigger, executed against the owning table's surfaces.
type ScriptOp struct {
	Kind   OpKind
	Font   Font
	X, Y   int
	Text   string
	Light  LightID
	On     bool
	Period int
	Sfx    SfxID
	Jingle JingleBind
}

// ScriptStep is one timed step: Delay frames after the previous step, then
// its ops execute together.
type ScriptStep struct {
	Delay int
	Ops   []ScriptOp
}

// Script is a declarative cue sequence replayed by the script engine.
type Script []ScriptStep

// scriptState is the replay cursor. Only one sequence plays at a time;
// binding while playing is an interrupt, not a queue.
type scriptState struct {
	script Script
	step   int
	wait   int
	active bool
}

// StartScript binds the sequence for the given event, replacing any playing
// sequence and resetting the cursor. Unmapped binds are ignored.
func (e *Engine) StartScript(bind ScriptBind) {
	script, ok := e.layout.Scripts[bind]
	if !ok || len(script) == 0 {
		return
	}
	e.script = scriptState{
		script: script,
		wait:   script[0].Delay,
		active: true,
	}
}

// ScriptActive reports whether a sequence is mid-replay.
func (e *Engine) ScriptActive() bool {
	return e.script.active
}

// scriptFrame advances the cursor by one frame, executing every step that
// comes due. Finishing the final step leaves the engine idle until the next
// bind.
func (e *Engine) scriptFrame() {
	s := &e.script
	if !s.active {
		return
	}
	s.wait--
	for s.wait <= 0 {
		for i := range s.script[s.step].Ops {
			e.execOp(&s.script[s.step].Ops[i])
		}
		s.step++
		if s.step >= len(s.script) {
			s.active = false
			return
		}
		s.wait = s.script[s.step].Delay
	}
}

func (e *Engine) execOp(op *ScriptOp) {
	switch op.Kind {
	case OpDmClear:
		e.dm.Clear()
	case OpDmText:
		e.dm.Puts(op.Font, op.X, op.Y, op.Text)
	case OpDmBlink:
		e.dm.SetBlink(op.On)
	case OpLight:
		e.lights.Set(op.Light, op.On)
	case OpLightBlink:
		e.lights.Blink(op.Light, op.Period)
	case OpLightsOff:
		e.lights.AllOff()
	case OpSfx:
		e.seq.PlaySfx(op.Sfx)
	case OpJingle:
		e.playJingleBind(op.Jingle)
	}
}
