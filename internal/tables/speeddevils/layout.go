// Package speeddevils implements table 2: a racing table built around the
// gearbox. Ramp laps shift up through five gears; fifth gear opens the
// overdrive window where ramp laps raise the millions pot, collected at the
// oil pit.
package speeddevils

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
	TrigGearEntry
	TrigGearExit
	TrigPitLane
	TrigBumperA
	TrigBumperB
	TrigBumperC
	TrigTurboA
	TrigTurboB
	TrigTurboC
	TrigTurboD
	TrigOilPit
)

// Light identities.
const (
	LightLaneOutLeft pin.LightID = iota
	LightLaneInLeft
	LightLaneInRight
	LightLaneOutRight
	LightGear1
	LightGear2
	LightGear3
	LightGear4
	LightGear5
	LightTurboA
	LightTurboB
	LightTurboC
	LightTurboD
	LightOverdrive
	LightPit
	LightMillions

	numLights
)

// Collision layers.
const (
	layerGround pin.Layer = iota
	layerRamp
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
	jingleOverdrive = 9
	jingleMillions  = 10
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
	// Bumper caps clustered like a chicane.
	ground.FillCircle(90, 130, 9, rubber)
	ground.FillCircle(150, 160, 9, rubber)
	ground.FillCircle(210, 130, 9, rubber)
	// Turbo target faces in a row along the top wall.
	ground.FillRect(core.NewRect(70, 40, 12, 5), rubber)
	ground.FillRect(core.NewRect(110, 40, 12, 5), rubber)
	ground.FillRect(core.NewRect(150, 40, 12, 5), rubber)
	ground.FillRect(core.NewRect(190, 40, 12, 5), rubber)
	// Pit lane tunnel walls on the left.
	ground.FillLine(12, 200, 12, 320, 3, wall)
	ground.FillLine(34, 210, 34, 310, 3, wall)
	// Gear ramp mouth: transition to the ramp layer.
	ground.FillRect(core.NewRect(232, 290, 20, 8), pin.TransitionCell(layerRamp))

	ramp := pin.NewPhysMap()
	// The ramp climbs the right side and banks over the bumpers.
	ramp.FillLine(252, 290, 252, 110, 3, wall)
	ramp.FillLine(224, 298, 224, 130, 3, wall)
	ramp.FillLine(252, 110, 50, 96, 3, wall)
	ramp.FillLine(224, 130, 70, 118, 3, wall)
	// Drop back to the ground layer on the left.
	ramp.FillRect(core.NewRect(52, 100, 16, 18), pin.TransitionCell(layerGround))

	l := &pin.Layout{
		Table:     pin.Table2,
		Name:      "SPEED DEVILS",
		Layers:    []pin.PhysMap{ground, ramp},
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
			{ID: TrigGearEntry, Layer: layerGround, Rect: core.NewRect(228, 280, 28, 18)},
			{ID: TrigGearExit, Layer: layerRamp, Rect: core.NewRect(48, 96, 26, 26)},
			{ID: TrigPitLane, Layer: layerGround, Rect: core.NewRect(14, 230, 20, 60)},
		},
		HitZones: []pin.HitZone{
			{ID: TrigTurboA, Layer: layerGround, Rect: core.NewRect(66, 36, 20, 14)},
			{ID: TrigTurboB, Layer: layerGround, Rect: core.NewRect(106, 36, 20, 14)},
			{ID: TrigTurboC, Layer: layerGround, Rect: core.NewRect(146, 36, 20, 14)},
			{ID: TrigTurboD, Layer: layerGround, Rect: core.NewRect(186, 36, 20, 14)},
		},
		Bumpers: []pin.Bumper{
			{ID: TrigBumperA, Layer: layerGround, X: 90, Y: 130, R: 12},
			{ID: TrigBumperB, Layer: layerGround, X: 150, Y: 160, R: 12},
			{ID: TrigBumperC, Layer: layerGround, X: 210, Y: 130, R: 12},
			{ID: TrigOilPit, Layer: layerGround, X: 50, Y: 370, R: 14, Kicker: true},
		},
		Lights: speedLights(),

		Scripts: speedScripts(),
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
			jingleBindOverdrive: {Position: jingleOverdrive},
			jingleBindMillions:  {Position: jingleMillions},
		},

		BallStartX: 298,
		BallStartY: 525,
		SpringRect: core.NewRect(282, 470, 36, 90),
		DrainRect:  core.NewRect(138, 548, 44, 24),

		KickerSpeedThreshold: 260,
		KickerSpeedBoost:     1100,
		BumperSpeedBoost:     640,
	}
	l.Materials[1] = pin.Material{Bounce: 170}
	l.Materials[2] = pin.Material{Bounce: 215}
	return l
}

func speedLights() []pin.LightDef {
	return []pin.LightDef{
		{X: 24, Y: 470},  // LightLaneOutLeft
		{X: 74, Y: 470},  // LightLaneInLeft
		{X: 204, Y: 470}, // LightLaneInRight
		{X: 254, Y: 470}, // LightLaneOutRight
		{X: 110, Y: 240}, // LightGear1
		{X: 130, Y: 240}, // LightGear2
		{X: 150, Y: 240}, // LightGear3
		{X: 170, Y: 240}, // LightGear4
		{X: 190, Y: 240}, // LightGear5
		{X: 76, Y: 60},   // LightTurboA
		{X: 116, Y: 60},  // LightTurboB
		{X: 156, Y: 60},  // LightTurboC
		{X: 196, Y: 60},  // LightTurboD
		{X: 150, Y: 280}, // LightOverdrive
		{X: 24, Y: 340},  // LightPit
		{X: 50, Y: 340},  // LightMillions
	}
}

// Table-specific script binds.
const (
	scriptBindOverdrive pin.ScriptBind = pin.BindTableBase + iota
	scriptBindTurbo
	scriptBindMillions
	scriptBindPit
)

// Table-specific jingle binds.
const (
	jingleBindOverdrive pin.JingleBind = pin.JingleTableBase + iota
	jingleBindMillions
)

func speedScripts() map[pin.ScriptBind]pin.Script {
	return map[pin.ScriptBind]pin.Script{
		pin.BindInit: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 14, Y: 1, Text: "SPEED DEVILS"},
			}},
			{Delay: 90, Ops: []pin.ScriptOp{{Kind: pin.OpDmBlink, On: true}}},
			{Delay: 180, Ops: []pin.ScriptOp{{Kind: pin.OpDmBlink}}},
		},
		pin.BindGameStart: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 22, Y: 1, Text: "START YOUR"},
			}},
			{Delay: 60, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 34, Y: 1, Text: "ENGINES"},
			}},
		},
		pin.BindGameStartPlayers: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 16, Y: 1, Text: "DRIVERS JOINED"},
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
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 26, Y: 1, Text: "PIT STOP"},
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
		scriptBindOverdrive: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 22, Y: 1, Text: "OVERDRIVE"},
				{Kind: pin.OpLightBlink, Light: LightOverdrive, Period: 6},
				{Kind: pin.OpJingle, Jingle: jingleBindOverdrive},
			}},
		},
		scriptBindTurbo: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 32, Y: 1, Text: "TURBO"},
				{Kind: pin.OpSfx, Sfx: pin.SfxTarget},
			}},
		},
		scriptBindMillions: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 18, Y: 1, Text: "MILLIONS!"},
				{Kind: pin.OpLight, Light: LightMillions},
				{Kind: pin.OpJingle, Jingle: jingleBindMillions},
			}},
		},
		scriptBindPit: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 16, Y: 1, Text: "BONUS HELD"},
				{Kind: pin.OpLight, Light: LightPit, On: true},
			}},
		},
	}
}
