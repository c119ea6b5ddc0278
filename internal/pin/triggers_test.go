package pin

import (
	"testing"

	"github.com/arcadeworks/tui-pinball/internal/core"
)

func TestRollTriggerEdges(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()
	e.inPlunger = false

	// Park the ball inside the lane; the scan runs in the physics sub-step.
	e.ball.SetPos(120, 55)
	e.RunFrame()

	if len(rules.rolls) != 1 || rules.rolls[0] != testRollLane || !rules.rollEdges[0] {
		t.Fatalf("entering the lane should fire one entry edge, got %v/%v", rules.rolls, rules.rollEdges)
	}

	// Still inside: no new edge.
	e.ball.SetPos(121, 55)
	e.RunFrame()
	if len(rules.rolls) != 1 {
		t.Fatalf("no edge while the ball stays in the zone, got %v", rules.rolls)
	}

	// Leaving fires the exit edge.
	e.ball.SetPos(250, 300)
	e.RunFrame()
	if len(rules.rolls) != 2 || rules.rollEdges[1] {
		t.Fatalf("leaving the lane should fire one exit edge, got %v/%v", rules.rolls, rules.rollEdges)
	}
}

func TestHitTriggerNeedsImpactSpeed(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()
	e.inPlunger = false

	// Drift into the wall target too slowly to register.
	e.ball.SetPos(60, 200)
	e.ball.vx = -(hitSpeedMin - 20)
	for i := 0; i < 10; i++ {
		e.RunFrame()
	}
	if len(rules.hits) != 0 {
		t.Fatalf("a soft touch must not fire a hit trigger, got %v", rules.hits)
	}

	// Slam it.
	e.ball.SetPos(60, 200)
	e.ball.vx = -800
	e.ball.vy = 0
	for i := 0; i < 10 && len(rules.hits) == 0; i++ {
		e.RunFrame()
	}
	if len(rules.hits) == 0 || rules.hits[0] != testHitWall {
		t.Fatalf("a hard impact in the target zone should fire it, got %v", rules.hits)
	}
}

func TestBumperBoostsAndFires(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()
	e.inPlunger = false

	// Approach the bumper from above.
	e.ball.SetPos(160, 188)
	e.ball.vy = 200
	for i := 0; i < 5 && len(rules.hits) == 0; i++ {
		e.RunFrame()
	}
	if len(rules.hits) == 0 || rules.hits[0] != testBumper {
		t.Fatalf("bumper contact should fire its trigger, got %v", rules.hits)
	}
	if e.ball.vy >= 0 {
		t.Errorf("bumper should push the ball back out, vy=%d", e.ball.vy)
	}
}

func TestOneHitTriggerPerFrame(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()
	e.inPlunger = false

	// A bumper contact and a wall impact in the same frame report only the
	// bumper.
	e.ball.SetPos(160, 188)
	e.ball.vy = 300
	e.hitPosValid = true
	e.hitPosX, e.hitPosY = 44, 200
	e.RunFrame()

	if len(rules.hits) > 1 {
		t.Errorf("at most one hit trigger per frame, got %v", rules.hits)
	}
}
