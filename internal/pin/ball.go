package pin

// Sub-pixel fixed point: positions and velocities carry 8 fractional bits so
// the integrator is exact and replayable.
const (
	subPixel = 256
	ballR    = 7 // ball radius in pixels
)

// ballState is the single simulated ball. Exactly one exists per table.
type ballState struct {
	x, y   int // center position in sub-pixels
	vx, vy int // velocity in sub-pixels per physics sub-step
	layer  Layer
	frozen bool // integration suspended during scripted holds
}

func newBall() ballState {
	return ballState{layer: LayerGround, frozen: true}
}

// Pos returns the ball center in pixels.
func (b *ballState) Pos() (int, int) {
	return b.x / subPixel, b.y / subPixel
}

// SetPos places the ball center at pixel coordinates, zeroing velocity.
func (b *ballState) SetPos(px, py int) {
	b.x = px * subPixel
	b.y = py * subPixel
	b.vx = 0
	b.vy = 0
}

// TeleportFreeze moves the ball and suspends integration, used when the
// drain returns the ball to the spring while scripts play out.
func (b *ballState) TeleportFreeze(layer Layer, px, py int) {
	b.SetPos(px, py)
	b.layer = layer
	b.frozen = true
}

// Unfreeze resumes integration.
func (b *ballState) Unfreeze() {
	b.frozen = false
}

// speed returns the larger axis speed, a cheap magnitude proxy the
// original's thresholds are tuned against.
func (b *ballState) speed() int {
	ax, ay := b.vx, b.vy
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax > ay {
		return ax
	}
	return ay
}
