package pin

// Resolution is the display-quality option: the buffer is always 320 wide,
// the height varies.
type Resolution int

const (
	ResolutionNormal Resolution = iota // 320x240
	ResolutionHigh                     // 320x350
	ResolutionFull                     // 320x609, the whole playfield
)

// dmRegionH is the strip below the playfield reserved for the dot-matrix.
const dmRegionH = 33

// Height returns the full buffer height for a resolution.
func (r Resolution) Height() int {
	switch r {
	case ResolutionHigh:
		return 350
	case ResolutionFull:
		return PlayfieldH + dmRegionH
	default:
		return 240
	}
}

// viewHeight is the playfield window height (buffer minus the DM strip).
func (r Resolution) viewHeight() int {
	return r.Height() - dmRegionH
}

// scrollState is the vertical window over the playfield. In play it follows
// the ball; in attract mode it drifts slowly over the whole table.
type scrollState struct {
	pos   int
	speed int
	viewH int
	drift int // attract drift direction
}

func newScroll(res Resolution) scrollState {
	viewH := res.viewHeight()
	if viewH > PlayfieldH {
		viewH = PlayfieldH
	}
	return scrollState{
		speed: 11,
		viewH: viewH,
		drift: 1,
		pos:   PlayfieldH - viewH,
	}
}

func (s *scrollState) maxPos() int {
	return PlayfieldH - s.viewH
}

// setSpeed changes how fast the window chases the ball (host speed presets).
func (s *scrollState) setSpeed(speed int) {
	if speed < 1 {
		speed = 1
	}
	s.speed = speed
}

// SetScrollSpeed changes the window chase speed, clamped at 1. Hosts bind
// this to speed-preset keys.
func (e *Engine) SetScrollSpeed(speed int) {
	e.scroll.setSpeed(speed)
}

// update chases the ball so it stays near the window center.
func (s *scrollState) update(ballY int) {
	target := ballY - s.viewH/2
	if target < 0 {
		target = 0
	}
	if target > s.maxPos() {
		target = s.maxPos()
	}
	switch {
	case s.pos < target:
		s.pos += s.speed
		if s.pos > target {
			s.pos = target
		}
	case s.pos > target:
		s.pos -= s.speed
		if s.pos < target {
			s.pos = target
		}
	}
}

// attractFrame drifts the window up and down the table.
func (s *scrollState) attractFrame() {
	if s.maxPos() == 0 {
		return
	}
	s.pos += s.drift
	if s.pos <= 0 {
		s.pos = 0
		s.drift = 1
	}
	if s.pos >= s.maxPos() {
		s.pos = s.maxPos()
		s.drift = -1
	}
}
