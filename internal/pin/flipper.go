package pin

// FlipperPhase is the kinematic phase of a flipper. Transitions follow the
// strict cycle idle -> rising -> held -> falling -> idle; presses during
// rising/held and releases during idle/falling are no-ops.
type FlipperPhase int

const (
	PhaseIdle FlipperPhase = iota
	PhaseRising
	PhaseHeld
	PhaseFalling
)

// Quantum step sizes per physics sub-step. Rising is faster than falling,
// matching the original's asymmetric swing.
const (
	riseStep = 2
	fallStep = 1
)

// flipperState is the per-flipper kinematic state machine. The quantum is
// the discrete angle index keyed by both collision and sprite selection.
type flipperState struct {
	def     FlipperDef
	phase   FlipperPhase
	quantum int
	rose    bool // quantum increased during the last sub-step ("flung")
}

func newFlipper(def FlipperDef) flipperState {
	return flipperState{def: def}
}

// press starts the swing. Only valid from idle; all other phases ignore it.
func (f *flipperState) press() {
	if f.phase == PhaseIdle {
		f.phase = PhaseRising
	}
}

// release starts the fall from rising or held-up.
func (f *flipperState) release() {
	if f.phase == PhaseRising || f.phase == PhaseHeld {
		f.phase = PhaseFalling
	}
}

// step advances the swing by one physics sub-step.
func (f *flipperState) step() {
	f.rose = false
	switch f.phase {
	case PhaseRising:
		f.quantum += riseStep
		f.rose = true
		if f.quantum >= f.def.Quanta {
			f.quantum = f.def.Quanta
			f.phase = PhaseHeld
		}
	case PhaseFalling:
		f.quantum -= fallStep
		if f.quantum <= 0 {
			f.quantum = 0
			f.phase = PhaseIdle
		}
	}
}
