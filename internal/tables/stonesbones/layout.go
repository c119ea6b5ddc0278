// Package stonesbones implements table 4: a graveyard table. Collecting all
// the stones and bones lights the tower; a tower lap opens the screams
// window. Skull targets arm a timed ball saver, and the ghost pays whatever
// it feels like.
package stonesbones

import (
	"github.com/arcadeworks/tui-pinball/internal/core"
	"github.com/arcadeworks/tui-pinball/internal/pin"
)

// Trigger identities. Declaration order in the layout is evaluation priority.
const (
	TrigOutLeft pin.TriggerID = iota
	TrigInLeft
	TrigInRight
	TrigOutRight
	TrigTowerEntry
	TrigTowerExit
	TrigBumperA
	TrigBumperB
	TrigBumperC
	TrigStoneA
	TrigStoneB
	TrigStoneC
	TrigSkullLeft
	TrigSkullRight
	TrigGhost
)

// Light identities.
const (
	LightLaneOutLeft pin.LightID = iota
	LightLaneInLeft
	LightLaneInRight
	LightLaneOutRight
	LightStoneA
	LightStoneB
	LightStoneC
	LightBone1
	LightBone2
	LightBone3
	LightBone4
	LightBone5
	LightBone6
	LightTower
	LightSaver
	LightGhost

	numLights
)

// Collision layers.
const (
	layerGround pin.Layer = iota
	layerTower
)

// Music positions consumed by the audio backend. Negative means silence.
const (
	songSilence     = -1
	songAttract     = 0
	songMain        = 1
	songPlunger     = 2
	jingleGameStart = 3
	jingleTilt      = 4
	jingleWarn      = 5
	jingleHighScore = 6
	jingleMatch     = 7
	jingleGameOver  = 8
	jingleScreams   = 9
	jingleGhost     = 10
)

// NewLayout builds the static table description.
func NewLayout() *pin.Layout {
	ground := pin.NewPhysMap()
	wall := pin.SolidCell(1)
	rubber := pin.SolidCell(2)

	// Spring lane wall on the right, open at the top.
	ground.FillRect(core.NewRect(278, 90, 4, 486), wall)
	// Funnel walls down to the flippers.
	ground.FillLine(1, 430, 104, 498, 3, wall)
	ground.FillLine(277, 430, 216, 498, 3, wall)
	// Outlane posts.
	ground.FillRect(core.NewRect(40, 400, 4, 60), rubber)
	ground.FillRect(core.NewRect(238, 400, 4, 60), rubber)
	// Bumper caps scattered like headstones.
	ground.FillCircle(85, 145, 9, rubber)
	ground.FillCircle(145, 115, 9, rubber)
	ground.FillCircle(205, 145, 9, rubber)
	// Stone target faces along the upper-left wall.
	ground.FillRect(core.NewRect(20, 190, 5, 14), rubber)
	ground.FillRect(core.NewRect(20, 216, 5, 14), rubber)
	ground.FillRect(core.NewRect(20, 242, 5, 14), rubber)
	// Skull targets guarding the outlanes.
	ground.FillRect(core.NewRect(52, 392, 5, 12), rubber)
	ground.FillRect(core.NewRect(224, 392, 5, 12), rubber)
	// Tower ramp mouth: transition to the tower layer.
	ground.FillRect(core.NewRect(236, 270, 20, 8), pin.TransitionCell(layerTower))

	tower := pin.NewPhysMap()
	// The tower spirals up the right edge and drops from the battlements.
	tower.FillLine(256, 270, 256, 84, 3, wall)
	tower.FillLine(228, 278, 228, 104, 3, wall)
	tower.FillLine(256, 84, 66, 66, 3, wall)
	tower.FillLine(228, 104, 86, 88, 3, wall)
	// Drop back to the ground layer on the left.
	tower.FillRect(core.NewRect(68, 70, 16, 18), pin.TransitionCell(layerGround))

	l := &pin.Layout{
		Table:     pin.Table4,
		Name:      "STONES'N BONES",
		Layers:    []pin.PhysMap{ground, tower},
		LayerDamp: []int{250, 246},
		Flippers: []pin.FlipperDef{
			{Side: pin.SideLeft, Rect: core.NewRect(108, 502, 42, 6), Quanta: 10},
			{Side: pin.SideRight, Rect: core.NewRect(170, 502, 42, 6), Quanta: 10},
		},
		RollZones: []pin.RollZone{
			{ID: TrigOutLeft, Layer: layerGround, Rect: core.NewRect(10, 440, 28, 40)},
			{ID: TrigInLeft, Layer: layerGround, Rect: core.NewRect(60, 440, 28, 40)},
			{ID: TrigInRight, Layer: layerGround, Rect: core.NewRect(190, 440, 28, 40)},
			{ID: TrigOutRight, Layer: layerGround, Rect: core.NewRect(240, 440, 28, 40)},
			{ID: TrigTowerEntry, Layer: layerGround, Rect: core.NewRect(232, 260, 28, 18)},
			{ID: TrigTowerExit, Layer: layerTower, Rect: core.NewRect(64, 66, 26, 26)},
		},
		HitZones: []pin.HitZone{
			{ID: TrigStoneA, Layer: layerGround, Rect: core.NewRect(16, 184, 14, 24)},
			{ID: TrigStoneB, Layer: layerGround, Rect: core.NewRect(16, 210, 14, 24)},
			{ID: TrigStoneC, Layer: layerGround, Rect: core.NewRect(16, 236, 14, 24)},
			{ID: TrigSkullLeft, Layer: layerGround, Rect: core.NewRect(48, 386, 14, 22)},
			{ID: TrigSkullRight, Layer: layerGround, Rect: core.NewRect(220, 386, 14, 22)},
		},
		Bumpers: []pin.Bumper{
			{ID: TrigBumperA, Layer: layerGround, X: 85, Y: 145, R: 12},
			{ID: TrigBumperB, Layer: layerGround, X: 145, Y: 115, R: 12},
			{ID: TrigBumperC, Layer: layerGround, X: 205, Y: 145, R: 12},
			{ID: TrigGhost, Layer: layerGround, X: 52, Y: 340, R: 14, Kicker: true},
		},
		Lights: stonesLights(),

		Scripts: stonesScripts(),
		Jingles: map[pin.JingleBind]pin.Jingle{
			pin.JingleAttract:   {Position: songAttract, Loop: true},
			pin.JingleSilence:   {Position: songSilence, Loop: true},
			pin.JingleMain:      {Position: songMain, Loop: true},
			pin.JinglePlunger:   {Position: songPlunger, Loop: true},
			pin.JingleGameStart: {Position: jingleGameStart},
			pin.JingleTilt:      {Position: jingleTilt},
			pin.JingleWarnTilt:  {Position: jingleWarn},
			pin.JingleHighScore: {Position: jingleHighScore},
			pin.JingleMatch:     {Position: jingleMatch},
			pin.JingleGameOver:  {Position: jingleGameOver},
			jingleBindScreams:   {Position: jingleScreams},
			jingleBindGhost:     {Position: jingleGhost},
		},

		BallStartX: 298,
		BallStartY: 525,
		SpringRect: core.NewRect(282, 470, 36, 90),
		DrainRect:  core.NewRect(138, 548, 44, 24),

		KickerSpeedThreshold: 260,
		KickerSpeedBoost:     1050,
		BumperSpeedBoost:     620,
	}
	l.Materials[1] = pin.Material{Bounce: 170}
	l.Materials[2] = pin.Material{Bounce: 215}
	return l
}

func stonesLights() []pin.LightDef {
	return []pin.LightDef{
		{X: 24, Y: 470},  // LightLaneOutLeft
		{X: 74, Y: 470},  // LightLaneInLeft
		{X: 204, Y: 470}, // LightLaneInRight
		{X: 254, Y: 470}, // LightLaneOutRight
		{X: 34, Y: 196},  // LightStoneA
		{X: 34, Y: 222},  // LightStoneB
		{X: 34, Y: 248},  // LightStoneC
		{X: 100, Y: 260}, // LightBone1
		{X: 116, Y: 260}, // LightBone2
		{X: 132, Y: 260}, // LightBone3
		{X: 148, Y: 260}, // LightBone4
		{X: 164, Y: 260}, // LightBone5
		{X: 180, Y: 260}, // LightBone6
		{X: 246, Y: 250}, // LightTower
		{X: 150, Y: 430}, // LightSaver
		{X: 52, Y: 312},  // LightGhost
	}
}

// Table-specific script binds.
const (
	scriptBindScreams pin.ScriptBind = pin.BindTableBase + iota
	scriptBindCollected
	scriptBindSaver
	scriptBindGhost
)

// Table-specific jingle binds.
const (
	jingleBindScreams pin.JingleBind = pin.JingleTableBase + iota
	jingleBindGhost
)

func stonesScripts() map[pin.ScriptBind]pin.Script {
	return map[pin.ScriptBind]pin.Script{
		pin.BindInit: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 8, Y: 1, Text: "STONES'N BONES"},
			}},
			{Delay: 90, Ops: []pin.ScriptOp{{Kind: pin.OpDmBlink, On: true}}},
			{Delay: 180, Ops: []pin.ScriptOp{{Kind: pin.OpDmBlink}}},
		},
		pin.BindGameStart: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 16, Y: 1, Text: "RISE AND SHINE"},
			}},
		},
		pin.BindGameStartPlayers: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 14, Y: 1, Text: "FRESH BODIES"},
			}},
		},
		pin.BindTilt: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 56, Y: 1, Text: "TILT"},
				{Kind: pin.OpDmBlink, On: true},
			}},
		},
		pin.BindConfirmQuit: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH7, X: 0, Y: 4, Text: "REALLY QUIT (Y OR N)"},
			}},
		},
		pin.BindDrained: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 12, Y: 1, Text: "REST IN PEACE"},
			}},
		},
		pin.BindGameOver: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 28, Y: 1, Text: "GAME OVER"},
				{Kind: pin.OpLightsOff},
			}},
		},
		pin.BindHighScore: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmBlink, On: true},
			}},
			{Delay: 30, Ops: []pin.ScriptOp{{Kind: pin.OpDmBlink}}},
		},
		scriptBindScreams: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 24, Y: 1, Text: "SCREAMS"},
				{Kind: pin.OpLightBlink, Light: LightTower, Period: 6},
				{Kind: pin.OpJingle, Jingle: jingleBindScreams},
			}},
		},
		scriptBindCollected: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 6, Y: 1, Text: "STONES N BONES"},
				{Kind: pin.OpLight, Light: LightTower, On: true},
				{Kind: pin.OpSfx, Sfx: pin.SfxTarget},
			}},
		},
		scriptBindSaver: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 18, Y: 1, Text: "BALL SAVED"},
				{Kind: pin.OpLightBlink, Light: LightSaver, Period: 10},
			}},
		},
		scriptBindGhost: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 30, Y: 1, Text: "GHOST"},
				{Kind: pin.OpLightBlink, Light: LightGhost, Period: 5},
				{Kind: pin.OpJingle, Jingle: jingleBindGhost},
			}},
		},
	}
}
