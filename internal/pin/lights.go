package pin

import "fmt"

// lightState is one playfield light. Blinking lights toggle on a fixed
// period advanced once per rendered frame.
type lightState struct {
	lit      bool
	blinking bool
	period   int
	phase    int
}

// Lights is the dense, id-indexed light bank of a table.
type Lights struct {
	states []lightState
}

func newLights(defs []LightDef) Lights {
	return Lights{states: make([]lightState, len(defs))}
}

func (l *Lights) check(id LightID) {
	if int(id) < 0 || int(id) >= len(l.states) {
		panic(fmt.Sprintf("pin: light id %d out of range (%d lights)", id, len(l.states)))
	}
}

// Set switches a light steadily on or off, clearing any blink.
func (l *Lights) Set(id LightID, on bool) {
	l.check(id)
	l.states[id] = lightState{lit: on}
}

// Blink makes a light toggle every period frames.
func (l *Lights) Blink(id LightID, period int) {
	l.check(id)
	if period < 1 {
		period = 1
	}
	l.states[id] = lightState{lit: true, blinking: true, period: period}
}

// IsLit reports the current visible state of a light.
func (l *Lights) IsLit(id LightID) bool {
	l.check(id)
	return l.states[id].lit
}

// AllOff extinguishes every light.
func (l *Lights) AllOff() {
	for i := range l.states {
		l.states[i] = lightState{}
	}
}

// Tilt extinguishes every light; the table goes dark until the ball drains.
func (l *Lights) Tilt() {
	l.AllOff()
}

// BlinkFrame advances all blinking lights by one rendered frame.
func (l *Lights) BlinkFrame() {
	for i := range l.states {
		s := &l.states[i]
		if !s.blinking {
			continue
		}
		s.phase++
		if s.phase >= s.period {
			s.phase = 0
			s.lit = !s.lit
		}
	}
}

// attractFrame runs the attract-mode chase pattern: one light sweeps the
// bank while the others stay dark.
func (l *Lights) attractFrame(frame int) {
	if len(l.states) == 0 {
		return
	}
	idx := frame / 8 % len(l.states)
	for i := range l.states {
		l.states[i] = lightState{lit: i == idx}
	}
}

// Snapshot returns the visible on/off set for rendering.
func (l *Lights) Snapshot() []bool {
	out := make([]bool, len(l.states))
	for i := range l.states {
		out[i] = l.states[i].lit
	}
	return out
}
