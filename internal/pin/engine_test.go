package pin

import (
	"testing"

	"github.com/arcadeworks/tui-pinball/internal/bcd"
	"github.com/arcadeworks/tui-pinball/internal/core"
)

// stubRules records every callback so tests can assert dispatch behavior.
type stubRules struct {
	hits      []TriggerID
	rolls     []TriggerID
	rollEdges []bool
	flips     int
	frames    int
	drains    int
	tasks     []TaskKind
	onTask    func(e *Engine, kind TaskKind)
}

func (r *stubRules) OnHitTrigger(e *Engine, id TriggerID) { r.hits = append(r.hits, id) }
func (r *stubRules) OnRollTrigger(e *Engine, id TriggerID, entered bool) {
	r.rolls = append(r.rolls, id)
	r.rollEdges = append(r.rollEdges, entered)
}
func (r *stubRules) OnFlipperPressed(e *Engine) { r.flips++ }
func (r *stubRules) Frame(e *Engine)            { r.frames++ }
func (r *stubRules) OnDrain(e *Engine)          { r.drains++ }
func (r *stubRules) OnTask(e *Engine, kind TaskKind) {
	r.tasks = append(r.tasks, kind)
	if r.onTask != nil {
		r.onTask(e, kind)
	}
}

// nullSeq is a no-op sequencer for tests.
type nullSeq struct{}

func (nullSeq) SetMusic(int)           {}
func (nullSeq) PlayJingle(Jingle, int) {}
func (nullSeq) ForceEndLoop()          {}
func (nullSeq) SetNoMusic(bool)        {}
func (nullSeq) SetMasterVolume(int)    {}
func (nullSeq) PlaySfx(SfxID)          {}
func (nullSeq) Pause()                 {}
func (nullSeq) Resume()                {}
func (nullSeq) Tick() int              { return 0 }

const (
	testRollLane TriggerID = iota
	testHitWall
	testBumper
)

// testLayout builds a minimal single-layer table: a lane roll zone up top, a
// target on the left wall, a bumper mid-field, two flippers, the spring lane
// on the right, and the drain between the flippers.
func testLayout() *Layout {
	ground := NewPhysMap()
	ground.FillRect(core.NewRect(40, 180, 6, 40), SolidCell(2))

	l := &Layout{
		Table:     Table1,
		Name:      "TESTBENCH",
		Layers:    []PhysMap{ground},
		LayerDamp: []int{250},
		Flippers: []FlipperDef{
			{Side: SideLeft, Rect: core.NewRect(110, 500, 40, 6), Quanta: 10},
			{Side: SideRight, Rect: core.NewRect(170, 500, 40, 6), Quanta: 10},
		},
		RollZones: []RollZone{
			{ID: testRollLane, Layer: LayerGround, Rect: core.NewRect(100, 50, 40, 20)},
		},
		HitZones: []HitZone{
			{ID: testHitWall, Layer: LayerGround, Rect: core.NewRect(38, 170, 12, 60)},
		},
		Bumpers: []Bumper{
			{ID: testBumper, Layer: LayerGround, X: 160, Y: 200, R: 10},
		},
		Lights:  []LightDef{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 30, Y: 10}},
		Scripts: map[ScriptBind]Script{},
		Jingles: map[JingleBind]Jingle{},

		BallStartX: 290,
		BallStartY: 525,
		SpringRect: core.NewRect(283, 490, 20, 70),
		DrainRect:  core.NewRect(140, 545, 40, 25),

		KickerSpeedThreshold: 300,
		KickerSpeedBoost:     900,
		BumperSpeedBoost:     600,
	}
	l.Materials[1] = Material{Bounce: 180}
	l.Materials[2] = Material{Bounce: 200}
	return l
}

func testEngine(rules Rules, seed int64) *Engine {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return New(testLayout(), rules, DefaultOptions(), [HighScoreCount]HighScore{}, nullSeq{}, cfg)
}

func TestStartGameLeavesAttract(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)

	if e.State() != StateAttract {
		t.Fatalf("new table should idle in attract, got %v", e.State())
	}
	if e.FlippersEnabled() {
		t.Error("flippers must be dead in attract mode")
	}

	e.HandleEvent(core.Start(1))
	e.RunFrame()

	if e.State() != StateBallInPlay {
		t.Fatalf("start key should begin a game, got %v", e.State())
	}
	if !e.FlippersEnabled() {
		t.Error("flippers should be live once the ball is issued")
	}
	if !e.InPlunger() {
		t.Error("a fresh ball starts in the plunger lane")
	}
	if e.CurrentPlayer() != 1 || e.CurrentBall() != 1 {
		t.Errorf("fresh game should be player 1 ball 1, got P%d B%d", e.CurrentPlayer(), e.CurrentBall())
	}
}

func TestStartKeyIgnoredWhileInactive(t *testing.T) {
	e := testEngine(&stubRules{}, 1)
	e.startKeysActive = false

	e.HandleEvent(core.Start(2))
	e.RunFrame()

	if !e.InAttract() {
		t.Error("start key must be ignored while start keys are inactive")
	}
}

func TestDrainFiresOnce(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()

	// Put the ball straight into the drain.
	e.inPlunger = false
	e.ball.SetPos(160, 550)
	e.RunFrame()

	if rules.drains != 1 {
		t.Fatalf("drain handler should run exactly once, ran %d times", rules.drains)
	}
	if e.FlippersEnabled() {
		t.Error("flippers must drop in the same frame the drain is handled")
	}
	if !e.ball.frozen {
		t.Error("drained ball should be frozen on the spring")
	}
	if e.State() != StateDraining {
		t.Errorf("state should be draining, got %v", e.State())
	}

	// Further frames must not re-fire the handler.
	for i := 0; i < 30; i++ {
		e.RunFrame()
	}
	if rules.drains != 1 {
		t.Errorf("drain handler re-fired: %d calls", rules.drains)
	}
}

func TestDrainClosesModeWindow(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()

	e.RequestMode(true, false, 20)
	if active, _, _ := e.InMode(); !active {
		t.Fatal("mode window should be active")
	}

	e.inPlunger = false
	e.ball.SetPos(160, 550)
	e.RunFrame()

	if active, _, _ := e.InMode(); active {
		t.Error("drain must close the mode window")
	}
}

func TestEndOfBallRotatesPlayers(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)
	e.HandleEvent(core.Start(2))
	e.RunFrame()

	e.AddScore(ScoreMain, 1000)
	e.inPlunger = false
	e.ball.SetPos(160, 550)
	e.RunFrame()

	// Let the end-of-ball task expire.
	for i := 0; i < 200; i++ {
		e.RunFrame()
	}

	if e.CurrentPlayer() != 2 {
		t.Fatalf("play should rotate to player 2, got %d", e.CurrentPlayer())
	}
	if e.CurrentBall() != 1 {
		t.Errorf("ball number should not advance until all players played, got %d", e.CurrentBall())
	}
	if !e.scores[ScoreMain].IsZero() {
		t.Errorf("player 2 starts from zero, got %s", e.scores[ScoreMain])
	}
	if e.players[0].Score.IsZero() {
		t.Error("player 1's score should be banked")
	}
}

func TestExtraBallReplaysSamePlayer(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()

	e.AwardExtraBall()
	e.inPlunger = false
	e.ball.SetPos(160, 550)
	for i := 0; i < 200; i++ {
		e.RunFrame()
	}

	if e.CurrentPlayer() != 1 || e.CurrentBall() != 1 {
		t.Errorf("extra ball should replay player 1 ball 1, got P%d B%d", e.CurrentPlayer(), e.CurrentBall())
	}
	if e.players[0].ExtraBalls != 0 {
		t.Errorf("extra ball should be consumed, %d left", e.players[0].ExtraBalls)
	}
}

func TestTiltSuspendsScoring(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()

	e.inPlunger = false
	e.ball.SetPos(160, 300)

	for i := 0; i < 3; i++ {
		e.HandleEvent(core.Press(core.EventNudge))
		e.HandleEvent(core.Release(core.EventNudge))
		e.RunFrame()
	}

	if !e.Tilted() {
		t.Fatalf("three quick nudges should tilt (counter %d)", e.tiltCounter)
	}
	if e.FlippersEnabled() {
		t.Error("tilt must drop the flippers")
	}

	before := e.Score(ScoreMain)
	e.AddScore(ScoreMain, 5000)
	if e.Score(ScoreMain).Cmp(before) != 0 {
		t.Error("scoring must be suspended while tilted")
	}

	// Tilt clears when the ball drains and the next ball is issued.
	e.ball.SetPos(160, 550)
	e.ball.Unfreeze()
	for i := 0; i < 200; i++ {
		e.RunFrame()
	}
	if e.Tilted() {
		t.Error("tilt should clear with the next ball")
	}
}

func TestNudgeBelowLimitOnlyWarns(t *testing.T) {
	e := testEngine(&stubRules{}, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()
	e.inPlunger = false
	e.ball.SetPos(160, 300)

	e.HandleEvent(core.Press(core.EventNudge))
	e.HandleEvent(core.Release(core.EventNudge))
	e.RunFrame()

	if e.Tilted() {
		t.Error("a single nudge must not tilt")
	}
	if e.tiltCounter == 0 {
		t.Error("nudge should raise the tilt counter")
	}
}

func TestFlipperPressEdgeReachesRules(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()

	e.HandleEvent(core.Press(core.EventFlipperLeft))
	e.RunFrame()
	e.RunFrame() // held, no new edge
	e.HandleEvent(core.Release(core.EventFlipperLeft))
	e.HandleEvent(core.Press(core.EventFlipperLeft))
	e.RunFrame()

	if rules.flips != 2 {
		t.Errorf("two press edges should reach the rules, got %d", rules.flips)
	}
}

func TestFlipperIgnoredInAttract(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)

	e.HandleEvent(core.Press(core.EventFlipperLeft))
	e.RunFrame()

	if rules.flips != 0 {
		t.Error("flipper presses must not reach rules while flippers are dead")
	}
	if e.flippers[0].phase != PhaseIdle {
		t.Error("dead flippers must not rise")
	}
}

func TestPlungerChargeAndLaunch(t *testing.T) {
	e := testEngine(&stubRules{}, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()

	e.HandleEvent(core.Press(core.EventPlunger))
	for i := 0; i < 10; i++ {
		e.RunFrame()
	}
	if e.springPos == 0 {
		t.Fatal("holding the plunger should charge the spring")
	}

	e.HandleEvent(core.Release(core.EventPlunger))
	e.RunFrame()

	if e.springPos != 0 {
		t.Error("launch should discharge the spring")
	}
	if e.ball.vy >= 0 {
		t.Errorf("launch should throw the ball upward, vy=%d", e.ball.vy)
	}
}

func TestSpringChargeCap(t *testing.T) {
	e := testEngine(&stubRules{}, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()

	e.HandleEvent(core.Press(core.EventPlunger))
	for i := 0; i < springMax*3; i++ {
		e.RunFrame()
	}
	if e.springPos != springMax {
		t.Errorf("spring charge should cap at %d, got %d", springMax, e.springPos)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	rules := &stubRules{}
	e := testEngine(rules, 1)
	e.HandleEvent(core.Start(1))
	e.RunFrame()
	e.inPlunger = false
	e.ball.SetPos(160, 300)
	e.RunFrame()

	x, y := e.ball.Pos()
	frames := rules.frames
	e.HandleEvent(core.Press(core.EventPause))

	for i := 0; i < 20; i++ {
		e.RunFrame()
	}

	nx, ny := e.ball.Pos()
	if nx != x || ny != y {
		t.Error("ball must not move while paused")
	}
	if rules.frames != frames {
		t.Error("rule frames must not run while paused")
	}
	if e.State() != StatePaused {
		t.Errorf("state should be paused, got %v", e.State())
	}

	// Any non-quit key unpauses.
	e.HandleEvent(core.Press(core.EventPause))
	e.RunFrame()
	if e.State() == StatePaused {
		t.Error("pause key should unpause")
	}
}

func TestQuitFadesThenNavigates(t *testing.T) {
	e := testEngine(&stubRules{}, 1)

	e.HandleEvent(core.Press(core.EventQuit))
	if e.State() != StateConfirmQuit {
		t.Fatalf("quit in attract should ask for confirmation, got %v", e.State())
	}
	e.HandleEvent(core.Press(core.EventConfirm))

	var navigated bool
	for i := 0; i < 0x100; i++ {
		a := e.RunFrame()
		if a.Kind == ActionNavigate {
			if a.Table != Table1 {
				t.Errorf("navigate action should carry the table id, got %v", a.Table)
			}
			navigated = true
			break
		}
	}
	if !navigated {
		t.Error("confirmed quit should navigate after the fade")
	}
}

func TestQuitDeniedStaysInAttract(t *testing.T) {
	e := testEngine(&stubRules{}, 1)
	e.HandleEvent(core.Press(core.EventQuit))
	e.HandleEvent(core.Press(core.EventDeny))
	e.RunFrame()

	if e.State() != StateAttract {
		t.Errorf("denied quit should stay in attract, got %v", e.State())
	}
}

func TestCheatSlowdownHalvesSubSteps(t *testing.T) {
	e := testEngine(&stubRules{}, 1)
	for _, c := range "SNAIL" {
		e.HandleEvent(core.Char(byte(c)))
	}
	if !e.cheat.slowdown {
		t.Fatal("typing SNAIL in attract should arm the slowdown cheat")
	}

	e2 := testEngine(&stubRules{}, 1)

	for _, eng := range []*Engine{e, e2} {
		eng.HandleEvent(core.Start(1))
		eng.RunFrame()
		eng.inPlunger = false
		eng.ball.SetPos(160, 100)
		eng.RunFrame()
	}

	if e.ball.vy >= e2.ball.vy {
		t.Errorf("slowed ball should gain less speed per frame: %d vs %d", e.ball.vy, e2.ball.vy)
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() *Engine {
		e := testEngine(&stubRules{}, 12345)
		e.HandleEvent(core.Start(1))
		for i := 0; i < 600; i++ {
			switch {
			case i == 5:
				e.HandleEvent(core.Press(core.EventPlunger))
			case i == 40:
				e.HandleEvent(core.Release(core.EventPlunger))
			case i > 60 && i%17 == 0:
				e.HandleEvent(core.Press(core.EventFlipperLeft))
			case i > 60 && i%17 == 8:
				e.HandleEvent(core.Release(core.EventFlipperLeft))
			case i > 90 && i%23 == 0:
				e.HandleEvent(core.Press(core.EventFlipperRight))
			case i > 90 && i%23 == 11:
				e.HandleEvent(core.Release(core.EventFlipperRight))
			}
			e.RunFrame()
		}
		return e
	}

	a, b := run(), run()
	if a.ball.x != b.ball.x || a.ball.y != b.ball.y {
		t.Errorf("ball positions diverged: (%d,%d) vs (%d,%d)", a.ball.x, a.ball.y, b.ball.x, b.ball.y)
	}
	if a.ball.vx != b.ball.vx || a.ball.vy != b.ball.vy {
		t.Error("ball velocities diverged")
	}
	if a.Score(ScoreMain).Cmp(b.Score(ScoreMain)) != 0 {
		t.Errorf("scores diverged: %s vs %s", a.Score(ScoreMain), b.Score(ScoreMain))
	}
	if a.State() != b.State() {
		t.Errorf("states diverged: %v vs %v", a.State(), b.State())
	}
}

func persistedTable() [HighScoreCount]HighScore {
	return [HighScoreCount]HighScore{
		{Name: [3]byte{'A', 'C', 'E'}, Score: bcd.FromUint64(900000)},
		{Name: [3]byte{'B', 'O', 'B'}, Score: bcd.FromUint64(800000)},
		{Name: [3]byte{'C', 'A', 'T'}, Score: bcd.FromUint64(700000)},
		{Name: [3]byte{'D', 'O', 'T'}, Score: bcd.FromUint64(600000)},
	}
}

func TestPersistedHighScoresSeedTheTable(t *testing.T) {
	persisted := persistedTable()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	e := New(testLayout(), &stubRules{}, DefaultOptions(), persisted, nullSeq{}, cfg)

	if e.HighScores() != persisted {
		t.Fatalf("constructor must carry the persisted table, got %+v", e.HighScores())
	}
	if qualifiesHighScore(&e.highScores, bcd.FromUint64(1000)) {
		t.Error("a score below the table floor must not qualify")
	}
	if !qualifiesHighScore(&e.highScores, bcd.FromUint64(650000)) {
		t.Error("a score above the floor should qualify")
	}
}

func TestGameOverNameEntryUpdatesTheTable(t *testing.T) {
	persisted := persistedTable()
	cfg := core.DefaultConfig()
	cfg.Seed = 5
	e := New(testLayout(), &stubRules{}, DefaultOptions(), persisted, nullSeq{}, cfg)

	e.HandleEvent(core.Start(1))
	e.RunFrame()
	e.AddScore(ScoreMain, 750000)

	// Drain all three balls; the end-of-ball task needs time to expire.
	for ball := 0; ball < 3; ball++ {
		e.inPlunger = false
		e.ball.SetPos(160, 550)
		for i := 0; i < 250 && e.State() != StateMatch; i++ {
			e.RunFrame()
		}
	}
	if e.State() != StateMatch {
		t.Fatalf("last drain should start the match spin-down, got %v", e.State())
	}

	// Let the match spin settle into name entry.
	for i := 0; i < 5000 && e.State() != StateGetName; i++ {
		e.RunFrame()
	}
	if e.State() != StateGetName {
		t.Fatalf("a qualifying score must prompt for initials, got %v", e.State())
	}

	for _, c := range []byte{'J', 'A', 'M'} {
		e.HandleEvent(core.Char(c))
	}

	var saved [HighScoreCount]HighScore
	flushed := false
	for i := 0; i < 200 && !flushed; i++ {
		a := e.RunFrame()
		if a.Kind == ActionSaveHighScores {
			flushed = true
			saved = a.HighScores
		}
	}
	if !flushed {
		t.Fatal("committed initials must flush the high-score table")
	}
	if saved[2].NameString() != "JAM" || saved[2].Score.Cmp(bcd.FromUint64(750000)) != 0 {
		t.Errorf("750000 should slot at rank 3, got %q %s", saved[2].NameString(), saved[2].Score)
	}
	if saved[3].NameString() != "CAT" {
		t.Errorf("old rank 3 should drop to rank 4, got %q", saved[3].NameString())
	}
	if e.State() == StateGetName {
		t.Error("the only qualifier was committed; name entry should be over")
	}
}

func TestLowScoreSkipsNameEntry(t *testing.T) {
	persisted := persistedTable()
	cfg := core.DefaultConfig()
	cfg.Seed = 6
	e := New(testLayout(), &stubRules{}, DefaultOptions(), persisted, nullSeq{}, cfg)

	e.HandleEvent(core.Start(1))
	e.RunFrame()
	e.AddScore(ScoreMain, 1000)

	for ball := 0; ball < 3; ball++ {
		e.inPlunger = false
		e.ball.SetPos(160, 550)
		for i := 0; i < 250 && e.State() != StateMatch; i++ {
			e.RunFrame()
		}
	}

	for i := 0; i < 5000 && e.State() == StateMatch; i++ {
		if a := e.RunFrame(); a.Kind == ActionSaveHighScores {
			t.Fatal("a non-qualifying game must not flush the table")
		}
		if e.State() == StateGetName {
			t.Fatal("a score below the floor must not prompt for initials")
		}
	}
	if e.HighScores() != persisted {
		t.Error("the persisted table must survive a non-qualifying game untouched")
	}
}
