package pin

// JingleBind names a semantic musical moment. Layouts map binds to concrete
// jingles; absent bindings are a normal no-op.
type JingleBind int

const (
	JingleAttract JingleBind = iota
	JingleSilence
	JingleMain
	JinglePlunger
	JingleGameStart
	JingleTilt
	JingleWarnTilt
	JingleHighScore
	JingleMatch
	JingleGameOver

	// JingleTableBase is the first bind value available for table-specific
	// jingles (mode starts, jackpots, and so on).
	JingleTableBase JingleBind = 100
)

// Jingle is a playable music cue: a position in the table's music module and
// whether it loops until replaced.
type Jingle struct {
	Position int
	Loop     bool
}

// SfxID names a short sound effect.
type SfxID int

const (
	SfxFlipper SfxID = iota
	SfxBumper
	SfxKicker
	SfxTarget
	SfxRoll
	SfxSpring
	SfxGameStart
	SfxDrain
	SfxExtraBall

	// SfxTableBase is the first effect id available for table-specific cues.
	SfxTableBase SfxID = 100
)

// Sequencer is the narrow command interface to the audio collaborator. The
// core issues commands but never reads audio state back except the playback
// tick count. Implementations live outside this package; a silent
// implementation is valid.
type Sequencer interface {
	// SetMusic jumps the background music to the given module position.
	SetMusic(position int)
	// PlayJingle interrupts music with a jingle; when the jingle ends and
	// returnTo is >= 0, music resumes at that position.
	PlayJingle(j Jingle, returnTo int)
	// ForceEndLoop finishes the current pattern loop early.
	ForceEndLoop()
	// SetNoMusic mutes or unmutes background music (jingles still play).
	SetNoMusic(noMusic bool)
	// SetMasterVolume sets the output volume, 0..256.
	SetMasterVolume(volume int)
	// PlaySfx triggers a short effect.
	PlaySfx(id SfxID)
	// Pause and Resume suspend and restore playback around game pause.
	Pause()
	Resume()
	// Tick returns the playback tick count, used only for pacing by the
	// front-end, never by the table core.
	Tick() int
}

// playJingleBind looks up a bind and plays it, returning to the current
// music. Missing bindings are ignored.
func (e *Engine) playJingleBind(bind JingleBind) {
	if j, ok := e.layout.Jingles[bind]; ok {
		e.seq.PlayJingle(j, -1)
	}
}

// playJingleBindSilence plays a bind and leaves silence behind it, used for
// tilt where the table goes quiet until the ball drains.
func (e *Engine) playJingleBindSilence(bind JingleBind) {
	j, ok := e.layout.Jingles[bind]
	if !ok {
		return
	}
	if silence, ok := e.layout.Jingles[JingleSilence]; ok {
		e.seq.PlayJingle(j, silence.Position)
	} else {
		e.seq.PlayJingle(j, -1)
	}
}

// playJingleBindForce replaces whatever is playing with the bind's jingle.
func (e *Engine) playJingleBindForce(bind JingleBind) {
	if j, ok := e.layout.Jingles[bind]; ok {
		e.seq.PlayJingle(j, -1)
		e.seq.ForceEndLoop()
	}
}
