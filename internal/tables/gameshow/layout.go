// Package gameshow implements table 3: a quiz-show table. Spelling PRIZE on
// the target bank lights the wheel ramp; the wheel pays a random award.
// Bumpers feed the jackpot pot, cracked open at the vault.
package gameshow

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
	TrigWheelEntry
	TrigWheelExit
	TrigBumperA
	TrigBumperB
	TrigBumperC
	TrigPrizeP
	TrigPrizeR
	TrigPrizeI
	TrigPrizeZ
	TrigPrizeE
	TrigVault
)

// Light identities.
const (
	LightLaneOutLeft pin.LightID = iota
	LightLaneInLeft
	LightLaneInRight
	LightLaneOutRight
	LightPrizeP
	LightPrizeR
	LightPrizeI
	LightPrizeZ
	LightPrizeE
	LightWheel
	LightVault
	LightExtraBall

	numLights
)

// Collision layers.
const (
	layerGround pin.Layer = iota
	layerWheel
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
	jingleWheel     = 9
	jingleJackpot   = 10
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
	// Bumper caps across the middle.
	ground.FillCircle(100, 170, 9, rubber)
	ground.FillCircle(160, 140, 9, rubber)
	ground.FillCircle(220, 170, 9, rubber)
	// PRIZE target faces staggered along the left wall.
	for i := 0; i < 5; i++ {
		ground.FillRect(core.NewRect(18, 180+26*i, 5, 14), rubber)
	}
	// Wheel ramp mouth: transition to the wheel layer.
	ground.FillRect(core.NewRect(234, 260, 20, 8), pin.TransitionCell(layerWheel))

	wheel := pin.NewPhysMap()
	// A short walled loop around the wheel cabinet up top.
	wheel.FillLine(254, 260, 254, 90, 3, wall)
	wheel.FillLine(226, 268, 226, 110, 3, wall)
	wheel.FillLine(254, 90, 70, 72, 3, wall)
	wheel.FillLine(226, 110, 90, 94, 3, wall)
	// Drop back to the ground layer on the left.
	wheel.FillRect(core.NewRect(72, 76, 16, 18), pin.TransitionCell(layerGround))

	l := &pin.Layout{
		Table:     pin.Table3,
		Name:      "BILLION DOLLAR GAMESHOW",
		Layers:    []pin.PhysMap{ground, wheel},
		LayerDamp: []int{250, 247},
		Flippers: []pin.FlipperDef{
			{Side: pin.SideLeft, Rect: core.NewRect(108, 502, 42, 6), Quanta: 10},
			{Side: pin.SideRight, Rect: core.NewRect(170, 502, 42, 6), Quanta: 10},
		},
		RollZones: []pin.RollZone{
			{ID: TrigOutLeft, Layer: layerGround, Rect: core.NewRect(10, 440, 28, 40)},
			{ID: TrigInLeft, Layer: layerGround, Rect: core.NewRect(60, 440, 28, 40)},
			{ID: TrigInRight, Layer: layerGround, Rect: core.NewRect(190, 440, 28, 40)},
			{ID: TrigOutRight, Layer: layerGround, Rect: core.NewRect(240, 440, 28, 40)},
			{ID: TrigWheelEntry, Layer: layerGround, Rect: core.NewRect(230, 250, 28, 18)},
			{ID: TrigWheelExit, Layer: layerWheel, Rect: core.NewRect(68, 72, 26, 26)},
		},
		HitZones: []pin.HitZone{
			{ID: TrigPrizeP, Layer: layerGround, Rect: core.NewRect(14, 174, 14, 24)},
			{ID: TrigPrizeR, Layer: layerGround, Rect: core.NewRect(14, 200, 14, 24)},
			{ID: TrigPrizeI, Layer: layerGround, Rect: core.NewRect(14, 226, 14, 24)},
			{ID: TrigPrizeZ, Layer: layerGround, Rect: core.NewRect(14, 252, 14, 24)},
			{ID: TrigPrizeE, Layer: layerGround, Rect: core.NewRect(14, 278, 14, 24)},
		},
		Bumpers: []pin.Bumper{
			{ID: TrigBumperA, Layer: layerGround, X: 100, Y: 170, R: 12},
			{ID: TrigBumperB, Layer: layerGround, X: 160, Y: 140, R: 12},
			{ID: TrigBumperC, Layer: layerGround, X: 220, Y: 170, R: 12},
			{ID: TrigVault, Layer: layerGround, X: 56, Y: 370, R: 14, Kicker: true},
		},
		Lights: showLights(),

		Scripts: showScripts(),
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
			jingleBindWheel:     {Position: jingleWheel},
			jingleBindJackpot:   {Position: jingleJackpot},
		},

		BallStartX: 298,
		BallStartY: 525,
		SpringRect: core.NewRect(282, 470, 36, 90),
		DrainRect:  core.NewRect(138, 548, 44, 24),

		KickerSpeedThreshold: 260,
		KickerSpeedBoost:     1000,
		BumperSpeedBoost:     600,
	}
	l.Materials[1] = pin.Material{Bounce: 170}
	l.Materials[2] = pin.Material{Bounce: 215}
	return l
}

func showLights() []pin.LightDef {
	return []pin.LightDef{
		{X: 24, Y: 470},  // LightLaneOutLeft
		{X: 74, Y: 470},  // LightLaneInLeft
		{X: 204, Y: 470}, // LightLaneInRight
		{X: 254, Y: 470}, // LightLaneOutRight
		{X: 34, Y: 186},  // LightPrizeP
		{X: 34, Y: 212},  // LightPrizeR
		{X: 34, Y: 238},  // LightPrizeI
		{X: 34, Y: 264},  // LightPrizeZ
		{X: 34, Y: 290},  // LightPrizeE
		{X: 244, Y: 240}, // LightWheel
		{X: 56, Y: 340},  // LightVault
		{X: 150, Y: 330}, // LightExtraBall
	}
}

// Table-specific script binds.
const (
	scriptBindWheel pin.ScriptBind = pin.BindTableBase + iota
	scriptBindPrize
	scriptBindJackpot
	scriptBindExtraBall
)

// Table-specific jingle binds.
const (
	jingleBindWheel pin.JingleBind = pin.JingleTableBase + iota
	jingleBindJackpot
)

func showScripts() map[pin.ScriptBind]pin.Script {
	return map[pin.ScriptBind]pin.Script{
		pin.BindInit: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH7, X: 8, Y: 1, Text: "BILLION DOLLAR"},
				{Kind: pin.OpDmText, Font: pin.FontH7, X: 8, Y: 9, Text: "GAMESHOW"},
			}},
			{Delay: 90, Ops: []pin.ScriptOp{{Kind: pin.OpDmBlink, On: true}}},
			{Delay: 180, Ops: []pin.ScriptOp{{Kind: pin.OpDmBlink}}},
		},
		pin.BindGameStart: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 16, Y: 1, Text: "COME ON DOWN"},
			}},
		},
		pin.BindGameStartPlayers: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 10, Y: 1, Text: "NEW CONTESTANTS"},
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
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 10, Y: 1, Text: "WRONG ANSWER"},
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
		scriptBindWheel: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 10, Y: 1, Text: "SPIN THE WHEEL"},
				{Kind: pin.OpJingle, Jingle: jingleBindWheel},
			}},
		},
		scriptBindPrize: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 14, Y: 1, Text: "PRIZE SPELLED"},
				{Kind: pin.OpLightBlink, Light: LightWheel, Period: 8},
				{Kind: pin.OpSfx, Sfx: pin.SfxTarget},
			}},
		},
		scriptBindJackpot: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 22, Y: 1, Text: "JACKPOT"},
				{Kind: pin.OpLightBlink, Light: LightVault, Period: 4},
				{Kind: pin.OpJingle, Jingle: jingleBindJackpot},
			}},
		},
		scriptBindExtraBall: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 20, Y: 1, Text: "EXTRA BALL"},
				{Kind: pin.OpLight, Light: LightExtraBall, On: true},
			}},
		},
	}
}
