// Package pin implements the real-time pinball simulation core: ball physics
// over layered collision maps, flipper and plunger kinematics, trigger
// dispatch, a frame-counted task scheduler, a scripted cue sequencer, BCD
// scoring, and the top-level game-flow state machine.
//
// The package is pure simulation: it consumes semantic input events and an
// already-parsed table layout, and exposes a per-frame snapshot for the
// platform layer to paint. Audio is driven through the narrow Sequencer
// interface; persistence is signaled through the Action returned by RunFrame.
package pin

import (
	"fmt"

	"github.com/arcadeworks/tui-pinball/internal/core"
)

// Playfield dimensions in pixels. The visible window scrolls vertically
// over the full playfield; width is fixed by the display contract.
const (
	PlayfieldW = 320
	PlayfieldH = 576
)

// TableID selects which of the four tables (and therefore which rule
// variant) a layout belongs to. Fixed at construction, never changes.
type TableID int

const (
	Table1 TableID = iota // party
	Table2                // speed
	Table3                // show
	Table4                // stones
)

// Layer indexes a collision layer. The ball occupies exactly one layer at a
// time; ramps move it between layers through transition cells.
type Layer int

// LayerGround is the base playfield layer every table has.
const LayerGround Layer = 0

// Collision map cell codes. A cell is either free, solid with a material
// index, or a transition that switches the ball to another layer.
const (
	CellFree       = 0x00
	cellSolidMask  = 0x07 // material index 1..7
	CellLayerBase  = 0x80 // CellLayerBase | n: switch to layer n
	cellLayerMask  = 0x7f
	maxMaterialIdx = 7
)

// SolidCell returns the cell code for a wall with the given material index.
func SolidCell(material int) byte {
	if material < 1 || material > maxMaterialIdx {
		panic(fmt.Sprintf("pin: material index %d out of range", material))
	}
	return byte(material)
}

// TransitionCell returns the cell code that moves the ball to the given layer.
func TransitionCell(to Layer) byte {
	return CellLayerBase | byte(to)
}

// Material describes how a surface reacts to the ball. Values are
// fixed-point fractions over 256 to keep the integrator integer-exact.
type Material struct {
	Bounce int // restitution: reflected velocity fraction (0..256)
}

// PhysMap is a per-layer occupancy map over the full playfield.
type PhysMap []byte

// NewPhysMap allocates an empty map with solid border walls (material 1).
func NewPhysMap() PhysMap {
	m := make(PhysMap, PlayfieldW*PlayfieldH)
	border := SolidCell(1)
	for x := 0; x < PlayfieldW; x++ {
		m[x] = border
		m[(PlayfieldH-1)*PlayfieldW+x] = border
	}
	for y := 0; y < PlayfieldH; y++ {
		m[y*PlayfieldW] = border
		m[y*PlayfieldW+PlayfieldW-1] = border
	}
	return m
}

// At returns the cell code at (x, y). Coordinates outside the playfield are
// solid, so the ball can never escape the map.
func (m PhysMap) At(x, y int) byte {
	if x < 0 || x >= PlayfieldW || y < 0 || y >= PlayfieldH {
		return SolidCell(1)
	}
	return m[y*PlayfieldW+x]
}

// FillRect stamps a cell code over a rectangle, clipped to the playfield.
func (m PhysMap) FillRect(r core.Rect, code byte) {
	x0 := core.Clamp(r.X, 0, PlayfieldW)
	y0 := core.Clamp(r.Y, 0, PlayfieldH)
	x1 := core.Clamp(r.Right(), 0, PlayfieldW)
	y1 := core.Clamp(r.Bottom(), 0, PlayfieldH)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			m[y*PlayfieldW+x] = code
		}
	}
}

// FillLine stamps a cell code along a thick line segment, used for the
// slanted walls tables are mostly made of.
func (m PhysMap) FillLine(x0, y0, x1, y1, thickness int, code byte) {
	dx := core.Abs(x1 - x0)
	dy := core.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		m.FillRect(core.NewRect(x, y, thickness, thickness), code)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// FillCircle stamps a cell code over a filled circle.
func (m PhysMap) FillCircle(cx, cy, r int, code byte) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if x < 0 || x >= PlayfieldW || y < 0 || y >= PlayfieldH {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				m[y*PlayfieldW+x] = code
			}
		}
	}
}

// FlipperID indexes a flipper in the layout's flipper list.
type FlipperID int

// FlipperSide tells which button controls a flipper.
type FlipperSide int

const (
	SideLeft FlipperSide = iota
	SideRight
)

// FlipperDef is the static description of one flipper: its collision
// rectangle and how many angle quanta its swing is divided into. The quantum
// index keys both collision shape and sprite selection, so kinematics must
// step through it exactly.
type FlipperDef struct {
	Side   FlipperSide
	Rect   core.Rect
	Quanta int // highest quantum index (held-up position)
}

// TriggerID identifies a roll or hit trigger zone. Values are per-table
// constants declared next to each table's layout.
type TriggerID int

// NoTrigger is the "no zone matched" sentinel.
const NoTrigger TriggerID = -1

// RollZone is a continuous-contact trigger region (lanes, ramps, drains).
// Declaration order in the layout is the evaluation priority.
type RollZone struct {
	ID    TriggerID
	Layer Layer
	Rect  core.Rect
}

// HitZone is a one-shot contact trigger region (targets).
type HitZone struct {
	ID    TriggerID
	Layer Layer
	Rect  core.Rect
}

// Bumper is a round kicker/bumper zone that boosts the ball away from its
// center and emits a hit trigger.
type Bumper struct {
	ID     TriggerID
	Layer  Layer
	X, Y   int
	R      int
	Kicker bool // kickers only fire above the kicker speed threshold
}

// LightID indexes a playfield light.
type LightID int

// LightDef places a light on the playfield for rendering.
type LightDef struct {
	X, Y int
}

// Layout is the complete, already-parsed static description of a table:
// collision data, fixtures, scripts, and sound bindings. Asset decoding is
// out of scope; table packages construct layouts in code.
type Layout struct {
	Table TableID
	Name  string

	Layers    []PhysMap
	LayerDamp []int // per-layer speed retention per sub-step (0..256)
	Materials [8]Material

	Flippers  []FlipperDef
	RollZones []RollZone
	HitZones  []HitZone
	Bumpers   []Bumper
	Lights    []LightDef

	Scripts map[ScriptBind]Script
	Jingles map[JingleBind]Jingle

	// BallStart is where the ball rests on the spring; SpringRect is the
	// plunger lane region; DrainRect is the drain geometry between the
	// flippers.
	BallStartX, BallStartY int
	SpringRect             core.Rect
	DrainRect              core.Rect

	KickerSpeedThreshold int
	KickerSpeedBoost     int
	BumperSpeedBoost     int
}

// Validate panics if the layout references out-of-range identities.
// Malformed layouts are programming errors; continuing would desynchronize
// physics from scoring.
func (l *Layout) Validate() {
	if len(l.Layers) == 0 {
		panic("pin: layout has no collision layers")
	}
	if len(l.LayerDamp) != len(l.Layers) {
		panic("pin: layout LayerDamp does not match layer count")
	}
	checkLayer := func(what string, layer Layer) {
		if int(layer) < 0 || int(layer) >= len(l.Layers) {
			panic(fmt.Sprintf("pin: %s references invalid layer %d", what, layer))
		}
	}
	for _, z := range l.RollZones {
		checkLayer("roll zone", z.Layer)
	}
	for _, z := range l.HitZones {
		checkLayer("hit zone", z.Layer)
	}
	for _, b := range l.Bumpers {
		checkLayer("bumper", b.Layer)
	}
	for _, f := range l.Flippers {
		if f.Quanta < 1 {
			panic("pin: flipper with no angle quanta")
		}
	}
	for i := range l.Layers {
		for _, c := range l.Layers[i] {
			if c&CellLayerBase != 0 {
				checkLayer("transition cell", Layer(c&cellLayerMask))
			}
		}
	}
}
