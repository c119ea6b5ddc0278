package pin

// Trigger dispatch converts physics contact results into semantic roll/hit
// triggers. It holds no rule knowledge: zones are matched in declaration
// order (ties resolve by order, not proximity) and the rule variant consumes
// the resulting edges once per frame, after all sub-steps have settled.

// scanRollTrigger records the roll zone under the ball for this sub-step.
// At most one roll trigger is active; the first declared match wins.
func (e *Engine) scanRollTrigger(px, py int) {
	e.rollNow = NoTrigger
	for i := range e.layout.RollZones {
		z := &e.layout.RollZones[i]
		if z.Layer == e.ball.layer && z.Rect.Contains(px, py) {
			e.rollNow = z.ID
			return
		}
	}
}

// dispatchRollTriggers compares this frame's settled roll trigger against the
// previous frame's and reports entry/exit edges to the rule variant.
func (e *Engine) dispatchRollTriggers() {
	cur := e.rollNow
	if cur == e.prevRollTrigger {
		return
	}
	if e.prevRollTrigger != NoTrigger {
		e.rules.OnRollTrigger(e, e.prevRollTrigger, false)
	}
	if cur != NoTrigger {
		e.rules.OnRollTrigger(e, cur, true)
	}
	e.prevRollTrigger = cur
}

// dispatchHitTriggers reports at most one hit trigger per frame: a bumper
// contact if one fired, otherwise the first declared hit zone containing the
// frame's hardest wall contact.
func (e *Engine) dispatchHitTriggers() {
	if e.hitBumper != NoTrigger {
		id := e.hitBumper
		e.hitBumper = NoTrigger
		e.hitPosValid = false
		e.seq.PlaySfx(SfxBumper)
		e.rules.OnHitTrigger(e, id)
		return
	}
	if !e.hitPosValid {
		return
	}
	px, py := e.hitPosX, e.hitPosY
	e.hitPosValid = false
	for i := range e.layout.HitZones {
		z := &e.layout.HitZones[i]
		if z.Layer == e.ball.layer && z.Rect.Contains(px, py) {
			e.seq.PlaySfx(SfxTarget)
			e.rules.OnHitTrigger(e, z.ID)
			return
		}
	}
}
