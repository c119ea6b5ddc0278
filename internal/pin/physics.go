package pin

// Integrator tuning. All velocities are sub-pixels per sub-step; four
// sub-steps run per rendered frame (two under the slow-motion cheat), so
// these constants are calibrated against a 240 Hz sub-step clock.
const (
	gravity       = 2    // vertical acceleration per sub-step
	maxAxisSpeed  = 2000 // per-axis speed clamp
	flingImpulseY = 520  // extra upward speed from a rising flipper
	flingImpulseX = 160  // sideways kick toward the table center
	flipperBounce = 200  // restitution against a resting flipper (/256)
	hitSpeedMin   = 120  // minimum impact speed to register a hit trigger
	springMax     = 0x20 // plunger charge cap
	springLaunch  = 64   // launch speed per charge unit
)

// physicsSubStep advances the simulation by one fixed sub-frame tick:
// flipper kinematics, ball integration against the active layer's collision
// map, flipper and bumper interaction, and the per-sub-step trigger scan.
func (e *Engine) physicsSubStep() {
	for i := range e.flippers {
		e.flippers[i].step()
	}

	b := &e.ball
	if b.frozen {
		return
	}

	damp := e.layout.LayerDamp[b.layer]
	b.vx = b.vx * damp / subPixel
	b.vy = b.vy*damp/subPixel + gravity
	b.vx = clampSpeed(b.vx)
	b.vy = clampSpeed(b.vy)

	nx := b.x + b.vx
	ny := b.y + b.vy
	pm := e.layout.Layers[b.layer]

	// Ramp transitions are discrete: crossing a mapped cell switches the
	// active layer before any collision test against the old geometry.
	if code := pm.At(nx/subPixel, ny/subPixel); code&CellLayerBase != 0 {
		b.layer = Layer(code & cellLayerMask)
		pm = e.layout.Layers[b.layer]
	}

	px := b.x / subPixel
	py := b.y / subPixel

	// Axis-separated collision: reflect the normal component and scale by
	// the hit cell's material restitution.
	if b.vx != 0 {
		probe := nx/subPixel + ballR
		if b.vx < 0 {
			probe = nx/subPixel - ballR
		}
		if code := pm.At(probe, py); isSolid(code) {
			impact := abs(b.vx)
			b.vx = -b.vx * e.material(code).Bounce / subPixel
			nx = b.x
			e.recordHit(probe, py, impact)
		}
	}
	if b.vy != 0 {
		probe := ny/subPixel + ballR
		if b.vy < 0 {
			probe = ny/subPixel - ballR
		}
		if code := pm.At(nx/subPixel, probe); isSolid(code) {
			impact := abs(b.vy)
			b.vy = -b.vy * e.material(code).Bounce / subPixel
			ny = b.y
			e.recordHit(nx/subPixel, probe, impact)
		}
	}

	b.x = nx
	b.y = ny
	px = b.x / subPixel
	py = b.y / subPixel

	if b.layer == LayerGround {
		e.flipperContact(px, py)
	}
	e.bumperContact(px, py)

	e.atSpring = e.layout.SpringRect.Contains(px, py)
	e.scanRollTrigger(px, py)
}

// flipperContact resolves ball-vs-flipper collision. A flipper whose quantum
// rose this sub-step is in its flung phase and transfers an impulse
// proportional to its angular speed; a resting flipper is a bouncy surface.
func (e *Engine) flipperContact(px, py int) {
	b := &e.ball
	for i := range e.flippers {
		f := &e.flippers[i]
		r := f.def.Rect
		if px+ballR <= r.X || px-ballR >= r.Right() || py+ballR <= r.Y || py-ballR >= r.Bottom() {
			continue
		}
		if f.rose {
			up := abs(b.vy) + flingImpulseY
			b.vy = -clampSpeed(up)
			if f.def.Side == SideLeft {
				b.vx += flingImpulseX
			} else {
				b.vx -= flingImpulseX
			}
			b.vx = clampSpeed(b.vx)
		} else if b.vy > 0 {
			b.vy = -b.vy * flipperBounce / subPixel
		}
		// Rest the ball on the flipper surface, never inside it.
		b.y = (r.Y - ballR) * subPixel
		return
	}
}

// bumperContact applies bumper/kicker boosts. Above the speed threshold a
// fixed boost pushes the ball away from the zone center and a hit event is
// emitted for the frame's trigger dispatch.
func (e *Engine) bumperContact(px, py int) {
	b := &e.ball
	for i := range e.layout.Bumpers {
		bm := &e.layout.Bumpers[i]
		if bm.Layer != b.layer {
			continue
		}
		dx := px - bm.X
		dy := py - bm.Y
		reach := bm.R + ballR
		if dx*dx+dy*dy > reach*reach {
			continue
		}
		boost := e.layout.BumperSpeedBoost
		if bm.Kicker {
			if b.speed() < e.layout.KickerSpeedThreshold {
				continue
			}
			boost = e.layout.KickerSpeedBoost
		}
		// Push along the dominant axis away from the center; dead-center
		// contact kicks straight up.
		norm := abs(dx)
		if abs(dy) > norm {
			norm = abs(dy)
		}
		if norm == 0 {
			b.vy = -boost
		} else {
			b.vx = clampSpeed(dx * boost / norm)
			b.vy = clampSpeed(dy * boost / norm)
		}
		if e.hitBumper == NoTrigger {
			e.hitBumper = bm.ID
		}
		return
	}
}

// springRelease transfers the plunger charge to the ball as an instantaneous
// launch velocity, clamped to the speed cap.
func (e *Engine) springRelease() {
	if e.atSpring && !e.ball.frozen {
		e.ball.vy = -clampSpeed(int(e.springPos) * springLaunch)
		e.seq.PlaySfx(SfxSpring)
	}
	e.springPos = 0
}

func (e *Engine) material(code byte) Material {
	return e.layout.Materials[code&cellSolidMask]
}

// recordHit remembers the first sufficiently hard wall contact of the frame
// for hit-trigger matching.
func (e *Engine) recordHit(px, py, impact int) {
	if impact < hitSpeedMin || e.hitPosValid {
		return
	}
	e.hitPosValid = true
	e.hitPosX = px
	e.hitPosY = py
}

func isSolid(code byte) bool {
	return code&CellLayerBase == 0 && code&cellSolidMask != 0
}

func clampSpeed(v int) int {
	if v > maxAxisSpeed {
		return maxAxisSpeed
	}
	if v < -maxAxisSpeed {
		return -maxAxisSpeed
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
