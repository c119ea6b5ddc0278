package pin

import "strings"

// cheatState tracks cheat-code entry. Codes are typed in attract mode;
// each toggles a debug behavior.
type cheatState struct {
	buf        string
	slowdown   bool // halve the physics sub-step rate
	noTilt     bool // nudges never accumulate tilt
	blockDrain bool // the drain handler never runs
}

const cheatBufMax = 12

var cheatCodes = []struct {
	word   string
	toggle func(*cheatState)
}{
	{"SNAIL", func(c *cheatState) { c.slowdown = !c.slowdown }},
	{"TILTPROOF", func(c *cheatState) { c.noTilt = !c.noTilt }},
	{"FORTRESS", func(c *cheatState) { c.blockDrain = !c.blockDrain }},
}

// handleCheat feeds one typed character into the code buffer.
func (e *Engine) handleCheat(chr byte) {
	c := &e.cheat
	c.buf += string(chr)
	if len(c.buf) > cheatBufMax {
		c.buf = c.buf[len(c.buf)-cheatBufMax:]
	}
	for _, code := range cheatCodes {
		if strings.HasSuffix(c.buf, code.word) {
			code.toggle(c)
			c.buf = ""
			e.seq.PlaySfx(SfxExtraBall)
			return
		}
	}
}
